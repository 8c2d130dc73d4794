package rules

func typeScriptRules() []APIRule {
	return []APIRule{
		{Name: "child_process.exec", Description: "executes a shell command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "child_process.spawn", Description: "spawns a new process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "child_process.execSync", Description: "synchronously executes a shell command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "child_process.spawnSync", Description: "synchronously spawns a new process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "exec", Description: "executes a shell command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "spawn", Description: "spawns a new process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},

		{Name: "fs.unlink", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "fs.unlinkSync", Description: "synchronously deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "fs.rmdir", Description: "deletes a directory, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "fs.rmdirSync", Description: "synchronously deletes a directory, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "fs.rm", Description: "deletes files or directories, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "fs.rmSync", Description: "synchronously deletes files or directories, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},

		{Name: "eval", Description: "evaluates a JavaScript code string, may lead to arbitrary code execution", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "new Function", Description: "creates a function from a string, may lead to arbitrary code execution", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "setTimeout", Description: "string first argument is evaluated as code", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "setInterval", Description: "string first argument is evaluated as code", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "vm.runInContext", Description: "runs code in a given context, may lead to arbitrary code execution", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "vm.runInNewContext", Description: "runs code in a new context, may lead to arbitrary code execution", Threat: ThreatCodeInjection, Resource: ResourceSystem},

		{Name: "http.request", Description: "sends an HTTP request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "https.request", Description: "sends an HTTPS request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "fetch", Description: "sends a network request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "axios.get", Description: "sends an HTTP GET request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "axios.post", Description: "sends an HTTP POST request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "XMLHttpRequest", Description: "sends a network request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "WebSocket", Description: "opens a WebSocket connection, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},

		{Name: "document.write", Description: "writes directly into the DOM, may enable XSS", Threat: ThreatXSS, Resource: ResourceSystem},
		{Name: "innerHTML", Description: "sets raw HTML content, may enable XSS", Threat: ThreatXSS, Resource: ResourceSystem},
		{Name: "dangerouslySetInnerHTML", Description: "sets raw HTML content in React, may enable XSS", Threat: ThreatXSS, Resource: ResourceSystem},
	}
}
