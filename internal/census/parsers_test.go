package census

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequirements(t *testing.T) {
	raw := []byte(`# comment
flask==2.0.1
requests>=2.25
numpy
os
sqlalchemy[asyncio]~=1.4
`)

	deps, err := parseRequirements("requirements.txt", raw)
	require.NoError(t, err)

	assert.Contains(t, deps, "flask")
	assert.Contains(t, deps, "requests")
	assert.Contains(t, deps, "numpy")
	assert.Contains(t, deps, "sqlalchemy")
	assert.NotContains(t, deps, "os")
}

func TestParsePackageJSON(t *testing.T) {
	raw := []byte(`{
  "name": "server",
  "dependencies": {"express": "^4.18.0", "fs": "0.0.1"},
  "devDependencies": {"jest": "^29.0.0"}
}`)

	deps, err := parsePackageJSON("package.json", raw)
	require.NoError(t, err)

	assert.Contains(t, deps, "express")
	assert.Contains(t, deps, "jest")
	assert.NotContains(t, deps, "fs")
}

func TestParsePackageJSONMalformed(t *testing.T) {
	_, err := parsePackageJSON("package.json", []byte("{broken"))
	assert.Error(t, err)
}

func TestParseGoMod(t *testing.T) {
	raw := []byte(`module example.com/server

go 1.21

require (
	github.com/spf13/cobra v1.5.0
	github.com/stretchr/testify v1.9.0 // indirect
)
`)

	deps, err := parseGoMod("go.mod", raw)
	require.NoError(t, err)

	assert.Contains(t, deps, "cobra")
	assert.NotContains(t, deps, "testify")
}

func TestParsePomXML(t *testing.T) {
	raw := []byte(`<?xml version="1.0"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency>
      <groupId>org.springframework</groupId>
      <artifactId>spring-core</artifactId>
    </dependency>
    <dependency>
      <groupId>java.sql</groupId>
      <artifactId>jdbc-shim</artifactId>
    </dependency>
  </dependencies>
</project>`)

	deps, err := parsePomXML("pom.xml", raw)
	require.NoError(t, err)

	assert.Contains(t, deps, "spring-core")
	assert.NotContains(t, deps, "jdbc-shim")
}

func TestParseGemfile(t *testing.T) {
	raw := []byte(`source "https://rubygems.org"

gem "rails", "~> 7.0"
gem 'sidekiq'
# gem "commented"
`)

	deps, err := parseGemfile("Gemfile", raw)
	require.NoError(t, err)

	assert.Contains(t, deps, "rails")
	assert.Contains(t, deps, "sidekiq")
	assert.NotContains(t, deps, "commented")
}
