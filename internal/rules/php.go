package rules

func phpRules() []APIRule {
	return []APIRule{
		{Name: "exec", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "shell_exec", Description: "executes a shell command and returns output, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "system", Description: "executes a system command and prints output, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "passthru", Description: "executes a command and passes raw output through, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "popen", Description: "opens a process file pointer, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "proc_open", Description: "executes a command with full process control, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "pcntl_exec", Description: "executes a program, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},

		{Name: "eval", Description: "evaluates a PHP code string, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "assert", Description: "assertion strings are evaluated as PHP code", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "create_function", Description: "creates a function from strings, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "preg_replace", Description: "the /e modifier evaluates the replacement as code", Threat: ThreatCodeInjection, Resource: ResourceSystem},

		{Name: "unlink", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "rmdir", Description: "deletes a directory, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},

		{Name: "curl_exec", Description: "performs a cURL session, may leak data or enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "curl_multi_exec", Description: "performs multiple cURL sessions, may leak data or enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "fsockopen", Description: "opens a socket connection, may leak data or enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "pfsockopen", Description: "opens a persistent socket connection, may leak data or enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "stream_socket_client", Description: "creates a client socket, may leak data or enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},

		{Name: "simplexml_load_file", Description: "loads XML from a file, watch for XXE", Threat: ThreatXXE, Resource: ResourceFile},
		{Name: "simplexml_load_string", Description: "loads XML from a string, watch for XXE", Threat: ThreatXXE, Resource: ResourceMemory},
		{Name: "DOMDocument::load", Description: "loads an XML file, watch for XXE", Threat: ThreatXXE, Resource: ResourceFile},
		{Name: "DOMDocument::loadXML", Description: "loads an XML string, watch for XXE", Threat: ThreatXXE, Resource: ResourceMemory},
		{Name: "xml_parse", Description: "parses an XML document, watch for XXE", Threat: ThreatXXE, Resource: ResourceMemory},

		{Name: "unserialize", Description: "deserializes a PHP object, may lead to code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
	}
}
