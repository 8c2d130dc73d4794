package rules

func javaRules() []APIRule {
	return []APIRule{
		{Name: "Runtime.exec", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "Runtime.getRuntime", Description: "obtains the runtime object commonly used to execute commands", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "ProcessBuilder", Description: "executes a system command, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},
		{Name: "ProcessBuilder.start", Description: "starts a process, may lead to arbitrary code execution", Threat: ThreatCommandExecution, Resource: ResourceSystem},

		{Name: "System.load", Description: "loads a native library, may lead to code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
		{Name: "System.loadLibrary", Description: "loads a native library, may lead to code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
		{Name: "Class.forName", Description: "dynamically loads a class, may lead to code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
		{Name: "ClassLoader.loadClass", Description: "loads a class, may lead to code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},
		{Name: "URLClassLoader.newInstance", Description: "creates a class loader, may lead to code execution", Threat: ThreatDynamicLoading, Resource: ResourceSystem},

		{Name: "Statement.execute", Description: "executes SQL, watch for SQL injection", Threat: ThreatDatabaseOperation, Resource: ResourceSystem},
		{Name: "Statement.executeQuery", Description: "executes a SQL query, watch for SQL injection", Threat: ThreatDatabaseOperation, Resource: ResourceSystem},
		{Name: "Statement.executeUpdate", Description: "executes a SQL update, watch for SQL injection", Threat: ThreatDatabaseOperation, Resource: ResourceSystem},
		{Name: "PreparedStatement.execute", Description: "executes SQL, must be properly parameterized", Threat: ThreatDatabaseOperation, Resource: ResourceSystem},
		{Name: "Connection.prepareStatement", Description: "prepares SQL, must be properly parameterized", Threat: ThreatDatabaseOperation, Resource: ResourceSystem},

		{Name: "File.delete", Description: "deletes a file, watch for unintended deletion", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "File.deleteOnExit", Description: "deletes a file on exit, watch for unintended deletion", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "FileInputStream", Description: "file input stream, watch for path traversal", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "FileOutputStream", Description: "file output stream, watch for path traversal", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "FileReader", Description: "file reader, watch for path traversal", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "FileWriter", Description: "file writer, watch for path traversal", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "Files.delete", Description: "deletes a file, watch for unintended deletion", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "Files.write", Description: "writes a file, watch for path traversal", Threat: ThreatFileOperation, Resource: ResourceFile},
		{Name: "Files.readAllBytes", Description: "reads a file, watch for path traversal", Threat: ThreatFileOperation, Resource: ResourceFile},

		{Name: "URL.openConnection", Description: "opens a URL connection, watch for SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "URL.openStream", Description: "opens a URL stream, watch for SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "URLConnection.connect", Description: "establishes a URL connection, watch for SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "HttpURLConnection", Description: "HTTP connection, watch for SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},
		{Name: "HttpClient.send", Description: "sends an HTTP request, watch for SSRF", Threat: ThreatNetworkRequest, Resource: ResourceNetwork},

		{Name: "ObjectInputStream.readObject", Description: "deserializes an object, may lead to code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},
		{Name: "XMLDecoder", Description: "deserializes XML, may lead to code execution", Threat: ThreatDeserialization, Resource: ResourceMemory},

		{Name: "Cipher.getInstance", Description: "obtains a cipher, make sure the algorithm and mode are secure", Threat: ThreatCryptoWeakness, Resource: ResourceSystem},
		{Name: "MessageDigest.getInstance", Description: "obtains a digest, make sure the algorithm is secure", Threat: ThreatCryptoWeakness, Resource: ResourceSystem},
		{Name: "KeyPairGenerator.getInstance", Description: "obtains a key pair generator, make sure parameters are secure", Threat: ThreatCryptoWeakness, Resource: ResourceSystem},
		{Name: "SecureRandom.setSeed", Description: "seeding the RNG may weaken randomness", Threat: ThreatInsecureRandom, Resource: ResourceSystem},

		{Name: "System.setSecurityManager", Description: "replaces the security manager, may weaken the security policy", Threat: ThreatPrivilegeEscalation, Resource: ResourceSystem},
		{Name: "Policy.setPolicy", Description: "replaces the security policy, may weaken permission control", Threat: ThreatPrivilegeEscalation, Resource: ResourceSystem},
		{Name: "AccessController.doPrivileged", Description: "runs privileged operations, watch for privilege escalation", Threat: ThreatPrivilegeEscalation, Resource: ResourceSystem},

		{Name: "System.setProperty", Description: "sets a system property, may alter program behavior", Threat: ThreatEnvManipulation, Resource: ResourceSystem},
		{Name: "System.getenv", Description: "reads environment variables that may hold secrets", Threat: ThreatEnvManipulation, Resource: ResourceSystem},

		{Name: "XPath.evaluate", Description: "evaluates an XPath query, watch for XPath injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},
		{Name: "SAXParserFactory.newSAXParser", Description: "creates an XML parser, watch for XXE", Threat: ThreatXXE, Resource: ResourceSystem},
		{Name: "DocumentBuilderFactory.newDocumentBuilder", Description: "creates an XML document builder, watch for XXE", Threat: ThreatXXE, Resource: ResourceSystem},
		{Name: "javax.script.ScriptEngine.eval", Description: "evaluates script code, may lead to code injection", Threat: ThreatCodeInjection, Resource: ResourceSystem},

		{Name: "Thread.sleep", Description: "sleeps the thread, may be used for timing attacks", Threat: ThreatResourceExhaustion, Resource: ResourceSystem},
		{Name: "ThreadPoolExecutor", Description: "thread pool executor, watch for resource management", Threat: ThreatResourceExhaustion, Resource: ResourceSystem},
		{Name: "File.createTempFile", Description: "creates a temp file, watch permissions and cleanup", Threat: ThreatInsecureTempFile, Resource: ResourceFile},
	}
}
