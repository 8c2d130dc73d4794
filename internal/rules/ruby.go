package rules

func rubyRules() []APIRule {
	return []APIRule{
		{Name: "system", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "exec", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "spawn", Description: "spawns a new process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "backtick", Description: "executes a command and returns output, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "popen", Description: "opens a process pipe, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},

		{Name: "eval", Description: "evaluates a Ruby code string, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "instance_eval", Description: "evaluates code in an object context, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "class_eval", Description: "evaluates code in a class context, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "module_eval", Description: "evaluates code in a module context, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "send", Description: "invokes a method dynamically, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},

		{Name: "File.delete", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "File.unlink", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "FileUtils.rm", Description: "deletes files, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "FileUtils.rm_r", Description: "recursively deletes files and directories, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "FileUtils.rm_rf", Description: "force-recursively deletes files and directories, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},

		{Name: "Net::HTTP.get", Description: "sends an HTTP GET request, may enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "Net::HTTP.post", Description: "sends an HTTP POST request, may enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "open-uri", Description: "opens remote URIs, may enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},

		{Name: "Marshal.load", Description: "deserializes a Ruby object, may lead to code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
		{Name: "YAML.load", Description: "loads YAML data, may lead to code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
		{Name: "JSON.load", Description: "loads JSON data, may lead to code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
	}
}
