package rules

func rustRules() []APIRule {
	return []APIRule{
		{Name: "std::process::Command::new", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "std::process::Command::output", Description: "executes a system command and captures output, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "std::process::Command::status", Description: "executes a system command and captures status, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "std::process::Command::spawn", Description: "executes a system command as a new process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},

		{Name: "std::fs::remove_file", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "std::fs::remove_dir", Description: "deletes a directory, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "std::fs::remove_dir_all", Description: "recursively deletes a directory, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},

		{Name: "reqwest::get", Description: "sends an HTTP GET request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "reqwest::Client::get", Description: "sends an HTTP GET request via a client, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "reqwest::Client::post", Description: "sends an HTTP POST request via a client, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "hyper::Client", Description: "creates an HTTP client, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "std::net::TcpStream::connect", Description: "opens a TCP connection, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},

		{Name: "std::mem::transmute", Description: "unsafe type reinterpretation, may lead to code execution", Threat: ThreatCodeInjection, Resource: ResourceMemory},
		{Name: "dlopen", Description: "dynamically loads a library, may lead to code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
		{Name: "libloading::Library::new", Description: "dynamically loads a library, may lead to code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
	}
}
