package testdb

import (
	"net/url"
	"os"
)

// databaseURLEnvVars are checked in order for a test database URL.
var databaseURLEnvVars = []string{"PERSONAPI_TEST_DB_URL", "DATABASE_URL", "PERSONAPI_DATABASE_URL"}

// GetTestDatabaseURL returns the first database URL found in the environment,
// or "" when none is set.
func GetTestDatabaseURL() string {
	for _, envVar := range databaseURLEnvVars {
		if v := os.Getenv(envVar); v != "" {
			return v
		}
	}
	return ""
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// ShouldSkipDatabaseTest reports whether database tests should be skipped.
func ShouldSkipDatabaseTest() bool {
	return !IsIntegrationTestEnvironment()
}

// isCIEnvironment reports whether tests run under a CI system.
func isCIEnvironment() bool {
	for _, envVar := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		if os.Getenv(envVar) != "" {
			return true
		}
	}
	return false
}

// maskDatabaseURL hides the password of dbURL for logging.
func maskDatabaseURL(dbURL string) string {
	parsed, err := url.Parse(dbURL)
	if err != nil || parsed.User == nil {
		return dbURL
	}
	if _, hasPassword := parsed.User.Password(); hasPassword {
		parsed.User = url.UserPassword(parsed.User.Username(), "****")
	}
	return parsed.String()
}
