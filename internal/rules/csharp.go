package rules

func cSharpRules() []APIRule {
	return []APIRule{
		{Name: "Process.Start", Description: "starts a process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "ProcessStartInfo", Description: "configures process startup, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "System.Diagnostics.Process.Start", Description: "starts a process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},

		{Name: "File.Delete", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "Directory.Delete", Description: "deletes a directory, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},

		{Name: "WebClient.DownloadFile", Description: "downloads a file, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "WebClient.DownloadString", Description: "downloads a string, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "HttpClient.GetAsync", Description: "sends an HTTP GET request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "HttpClient.PostAsync", Description: "sends an HTTP POST request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "Socket.Connect", Description: "opens a network connection, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},

		{Name: "Assembly.Load", Description: "loads an assembly, may lead to arbitrary code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
		{Name: "Assembly.LoadFrom", Description: "loads an assembly from a path, may lead to arbitrary code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
		{Name: "Activator.CreateInstance", Description: "creates objects dynamically, may lead to arbitrary code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
		{Name: "Type.GetType", Description: "resolves a type, commonly used for dynamic instantiation", Threat: ThreatDynamicLoading, Resource: ResourceSystem},

		{Name: "Reflection", Description: "reflection operations, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "CSharpCodeProvider", Description: "compiles C# code at runtime, may lead to arbitrary code execution", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "Eval", Description: "evaluates script code, may lead to arbitrary code execution", Threat: ThreatCodeInjection, Resource: ResourceSystem},

		{Name: "XmlSerializer", Description: "XML serialization and deserialization, may lead to code execution", Threat: ThreatDeserialization, Resource: ResourceSystem},
		{Name: "BinaryFormatter.Deserialize", Description: "binary deserialization, may lead to code execution", Threat: ThreatDeserialization, Resource: ResourceSystem},
	}
}
