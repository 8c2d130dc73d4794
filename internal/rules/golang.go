package rules

func goRules() []APIRule {
	return []APIRule{
		{Name: "os/exec.Command", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "exec.Command", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "exec.CommandContext", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "os.StartProcess", Description: "starts a new process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},

		{Name: "os.Remove", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "os.RemoveAll", Description: "recursively deletes a directory, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},

		{Name: "http.Get", Description: "sends an HTTP GET request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "http.Post", Description: "sends an HTTP POST request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "http.Client.Do", Description: "performs an HTTP request, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "net.Dial", Description: "opens a network connection, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "net.DialTimeout", Description: "opens a network connection with timeout, may leak data", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},

		{Name: "plugin.Open", Description: "dynamically loads a Go plugin, may lead to arbitrary code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
		{Name: "reflect.Value.Call", Description: "calls a function through reflection, may lead to arbitrary code execution", Threat: ThreatCodeInjection, Resource: ResourceSystem},
	}
}
