package rules

func kotlinRules() []APIRule {
	return []APIRule{
		{Name: "Runtime.exec", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "ProcessBuilder", Description: "creates a new process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "ProcessBuilder.start", Description: "starts a new process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},

		{Name: "File.delete", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "File.deleteRecursively", Description: "recursively deletes files and directories, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "Files.delete", Description: "deletes a file, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "Files.deleteIfExists", Description: "deletes a file if present, may cause data loss", Threat: ThreatFileOperation, Resource: ResourceFile},

		{Name: "URL.openConnection", Description: "opens a network connection, may enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "HttpURLConnection", Description: "creates an HTTP connection, may enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "Socket", Description: "creates a socket connection, may enable SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},

		{Name: "Class.forName", Description: "loads a class dynamically, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "ClassLoader.loadClass", Description: "loads a class dynamically, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "Method.invoke", Description: "invokes a method dynamically, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},

		{Name: "ObjectInputStream.readObject", Description: "deserializes an object, may lead to code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
		{Name: "XMLDecoder", Description: "decodes XML data, may lead to code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
		{Name: "Gson.fromJson", Description: "parses JSON data, may lead to code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},

		{Name: `MessageDigest.getInstance("MD5")`, Description: "uses the insecure MD5 hash algorithm", Threat: ThreatWeakEncryption, Resource: ResourceSystem},
		{Name: `Cipher.getInstance("DES")`, Description: "uses the insecure DES encryption algorithm", Threat: ThreatWeakEncryption, Resource: ResourceSystem},
	}
}
