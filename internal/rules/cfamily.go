package rules

func cFamilyRules() []APIRule {
	return []APIRule{
		{Name: "system", Description: "executes a shell command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "popen", Description: "executes a shell command and captures output, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "exec", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "execl", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "execlp", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "execle", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "execv", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "execvp", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "fork", Description: "creates a child process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "std::system", Description: "executes a shell command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},

		{Name: "remove", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "unlink", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "std::remove", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "rmdir", Description: "deletes a directory, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},

		{Name: "socket", Description: "creates a network socket, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "connect", Description: "opens a network connection, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "recv", Description: "receives network data, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "send", Description: "sends network data, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "curl_easy_perform", Description: "performs an HTTP request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},

		{Name: "dlopen", Description: "dynamically loads a library, may lead to code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
		{Name: "dlsym", Description: "resolves a symbol in a dynamic library, may lead to code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
		{Name: "LoadLibrary", Description: "loads a DLL, may lead to code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},

		{Name: "CreateProcess", Description: "creates a process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "ShellExecute", Description: "executes a shell command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "WinExec", Description: "executes a program, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
	}
}
