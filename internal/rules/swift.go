package rules

func swiftRules() []APIRule {
	return []APIRule{
		{Name: "Process", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "NSTask", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "system", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},

		{Name: "FileManager.removeItem", Description: "deletes a file or directory, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "FileManager.trashItem", Description: "moves a file or directory to the trash, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "unlink", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "remove", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},

		{Name: "URLSession.dataTask", Description: "performs a network request, may leak data or enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "URLSession.downloadTask", Description: "downloads a file, may leak data or enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "URLSession.uploadTask", Description: "uploads a file, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "CFNetwork", Description: "low level networking, may leak data or enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},

		{Name: "NSClassFromString", Description: "loads a class dynamically, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "performSelector", Description: "invokes a method dynamically, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "dlopen", Description: "dynamically loads a library, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},

		{Name: "UnsafePointer", Description: "unsafe pointer operations, may corrupt memory", Threat: ThreatMemoryCorruption, Resource: ResourceMemory},
		{Name: "UnsafeMutablePointer", Description: "unsafe mutable pointer operations, may corrupt memory", Threat: ThreatMemoryCorruption, Resource: ResourceMemory},
		{Name: "withUnsafePointer", Description: "unsafe pointer operations, may corrupt memory", Threat: ThreatMemoryCorruption, Resource: ResourceMemory},
		{Name: "withUnsafeMutablePointer", Description: "unsafe mutable pointer operations, may corrupt memory", Threat: ThreatMemoryCorruption, Resource: ResourceMemory},
	}
}
