package rules

func pythonRules() []APIRule {
	return []APIRule{
		{Name: "os.system", Description: "executes a shell command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "os.popen", Description: "executes a shell command and captures output, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "subprocess.run", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "subprocess.Popen", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "subprocess.call", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "subprocess.check_call", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "subprocess.check_output", Description: "executes a system command and captures output, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},

		{Name: "os.unlink", Description: "deletes a file, may destroy important data", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.remove", Description: "deletes a file, may destroy important data", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.rmdir", Description: "deletes a directory, may destroy important data", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "shutil.rmtree", Description: "recursively deletes a directory tree, may destroy important data", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.open", Description: "bypasses path safety checks, enables path traversal", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.rename", Description: "replaces system files, may destabilize the system", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.chmod", Description: "changes file permissions, may expose sensitive data", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.symlink", Description: "creates symlinks that can point at privileged files", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.link", Description: "creates hard links to privileged files for escalation", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.mkdir", Description: "creates directories with elevated permissions", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.stat", Description: "leaks file metadata", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.utime", Description: "rewrites file timestamps to cover attack traces", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.truncate", Description: "truncates file contents", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.path.exists", Description: "probes for sensitive file paths", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.access", Description: "misjudged writability checks cause unintended overwrite", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.lchmod", Description: "changes symlink permissions", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.makedirs", Description: "creates nested directories with misconfigured permissions", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.chown", Description: "changes file ownership and breaks the permission model", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.fdopen", Description: "manual file creation without race condition handling", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "shutil.copy", Description: "overwrites the destination file", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "shutil.move", Description: "moves files to attacker-controlled paths", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "shutil.chown", Description: "changes file ownership, confuses permissions", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "tempfile.mktemp", Description: "predictable temp file names allow race condition hijacking", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "tempfile.NamedTemporaryFile", Description: "temp files not auto-deleted may retain sensitive data", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "pathlib.Path.write_text", Description: "unvalidated path enables arbitrary file write", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "pathlib.Path.unlink", Description: "deletes a file without path validation", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "io.open", Description: "path traversal risk similar to os.open", Threat: ThreatFileOperation, Resource: ResourceFile},

		{Name: "eval", Description: "evaluates a Python expression, may lead to arbitrary code execution", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "exec", Description: "executes Python code, may lead to arbitrary code execution", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "compile", Description: "compiles Python code, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},

		{Name: "socket.connect", Description: "connects to external, possibly malicious servers", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "socket.bind", Description: "opens high-risk ports allowing unauthorized access", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "socket.send", Description: "transmits sensitive data in plaintext", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "socket.recv", Description: "receives crafted packets that may overflow buffers", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "socket.listen", Description: "listens on unauthorized ports exposing services", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "requests.get", Description: "SSRF against internal networks", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "requests.post", Description: "unvalidated request parameters allow malicious data submission", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "urllib.request.urlopen", Description: "unvalidated URL leaks internal resources", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "urllib.parse.urljoin", Description: "joining malicious URLs triggers path traversal", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},

		{Name: "pickle.loads", Description: "deserializes Python objects, may lead to arbitrary code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
		{Name: "pickle.load", Description: "deserializes Python objects from files, may lead to arbitrary code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
		{Name: "marshal.loads", Description: "deserializes Python code objects, may lead to arbitrary code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
		{Name: "marshal.load", Description: "deserializes Python code objects from files, may lead to arbitrary code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
		{Name: "yaml.load", Description: "unsafe YAML parsing, may lead to arbitrary code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
		{Name: "yaml.unsafe_load", Description: "unsafe YAML parsing, may lead to arbitrary code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},

		{Name: "ctypes.memmove", Description: "out-of-bounds memory operations crash the process or execute code", Threat: ThreatMemorySafety, Resource: ResourceMemory},
		{Name: "ctypes.cast", Description: "incorrect type casts leak memory or crash", Threat: ThreatMemorySafety, Resource: ResourceMemory},
		{Name: "ctypes.POINTER", Description: "improper pointer handling corrupts memory", Threat: ThreatMemorySafety, Resource: ResourceMemory},
		{Name: "ctypes.CDLL", Description: "dynamically loads possibly malicious shared libraries", Threat: ThreatDynamicLoading, Resource: ResourceMemory},
		{Name: "ctypes.create_string_buffer", Description: "fixed buffer without input validation overflows", Threat: ThreatMemorySafety, Resource: ResourceMemory},

		{Name: "os.execl", Description: "replaces the current process to run malicious commands", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "os.spawnlp", Description: "spawns external commands inheriting elevated privileges", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "multiprocessing.Process", Description: "spawning many processes exhausts resources", Threat: ThreatResourceExhaustion, Resource: ResourceSystem},
		{Name: "os.fork", Description: "excessive forking exhausts resources or crashes the system", Threat: ThreatResourceExhaustion, Resource: ResourceSystem},
		{Name: "os.kill", Description: "sends signals that interfere with other processes", Threat: ThreatProcessManipulation, Resource: ResourceSystem},
	}
}
