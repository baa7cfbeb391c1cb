package cmd

import (
	"os"
	"testing"
)

// unsetenv removes key from the environment for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // restores the original value on cleanup
	os.Unsetenv(key)
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetenv(t, EnvDataFile)
	unsetenv(t, EnvCurrency)
	unsetenv(t, EnvLogLevel)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	want := Config{DataFile: "FleetData.db", Currency: "USD", LogLevel: "warn"}
	if *cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", *cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	unsetenv(t, EnvDataFile)
	unsetenv(t, EnvCurrency)
	unsetenv(t, EnvLogLevel)
	t.Setenv(EnvLogLevel, "debug") // the environment wins over the file

	envFile := writeFile(t, ".env", "FLEET_DATA_FILE=/tmp/boats.db\nFLEET_CURRENCY=EUR\nFLEET_LOG_LEVEL=info\n")
	cfg, err := LoadConfig(envFile)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	want := Config{DataFile: "/tmp/boats.db", Currency: "EUR", LogLevel: "debug"}
	if *cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadConfig_MissingEnvFile(t *testing.T) {
	if _, err := LoadConfig("does-not-exist.env"); err != nil {
		t.Errorf("LoadConfig() with a missing file failed: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{name: "no data file", cfg: Config{Currency: "USD", LogLevel: "warn"}},
		{name: "unknown currency", cfg: Config{DataFile: "f.db", Currency: "DOUBLOON", LogLevel: "warn"}},
		{name: "bad log level", cfg: Config{DataFile: "f.db", Currency: "USD", LogLevel: "loud"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err == nil {
				t.Errorf("Validate() succeeded, want an error")
			}
		})
	}
}
