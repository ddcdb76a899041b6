package testdb_test

import (
	"testing"

	"github.com/phrazzld/tasks-api/internal/testdb"
	"github.com/stretchr/testify/assert"
)

func TestGetTestDatabaseURL(t *testing.T) {
	tests := []struct {
		name      string
		testDBURL string
		dbURL     string
		want      string
	}{
		{name: "none set", want: ""},
		{name: "database url only", dbURL: "postgres://b", want: "postgres://b"},
		{name: "test url wins", testDBURL: "postgres://a", dbURL: "postgres://b", want: "postgres://a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TASKS_TEST_DB_URL", tt.testDBURL)
			t.Setenv("DATABASE_URL", tt.dbURL)

			assert.Equal(t, tt.want, testdb.GetTestDatabaseURL())
			assert.Equal(t, tt.want != "", testdb.IsIntegrationTestEnvironment())
		})
	}
}
