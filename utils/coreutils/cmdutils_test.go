package coreutils

import (
	"reflect"
	"testing"
)

func TestFindAndRemoveFlagFromCommand(t *testing.T) {
	argsTable := [][]string{
		{"bundle", "--entry-file", "index.js", "--config", "custom.yaml", "--dev"},
		{"run", "--config=custom.yaml", "--configure", "foo"},
		{"env", "--format", "table", "--config", "custom.yaml"},
	}

	expected := []struct {
		key     string
		value   string
		command []string
	}{
		{"--config", "custom.yaml", []string{"bundle", "--entry-file", "index.js", "--dev"}},
		{"--config", "custom.yaml", []string{"run", "--configure", "foo"}},
		{"--config", "custom.yaml", []string{"env", "--format", "table"}},
	}

	for index := range argsTable {
		curTestArgs := argsTable[index]
		flagIndex, valueIndex, keyValue, err := FindFlag(expected[index].key, curTestArgs)
		if err != nil {
			t.Error(err)
		}
		if keyValue != expected[index].value {
			t.Errorf("Expected %s value: %s, got: %s.", expected[index].key, expected[index].value, keyValue)
		}
		RemoveFlagFromCommand(&curTestArgs, flagIndex, valueIndex)
		if !reflect.DeepEqual(curTestArgs, expected[index].command) {
			t.Errorf("Expected command arguments: %v, got: %v.", expected[index].command, curTestArgs)
		}
	}
}

func getFlagTestCases() []struct {
	name           string
	arguments      []string
	flagName       string
	flagIndex      int
	flagValueIndex int
	flagValue      string
	expectErr      bool
} {
	return []struct {
		name           string
		arguments      []string
		flagName       string
		flagIndex      int
		flagValueIndex int
		flagValue      string
		expectErr      bool
	}{
		{"simple-flag", []string{"bundle", "--config", "custom.yaml"}, "--config", 1, 2, "custom.yaml", false},
		{"flag-equals-value", []string{"bundle", "--config=custom.yaml"}, "--config", 1, 1, "custom.yaml", false},
		{"flag-missing", []string{"bundle", "--dev"}, "--config", -1, -1, "", false},
		{"prefix-flag-skipped", []string{"bundle", "--config-dir", "conf", "--config", "c.yaml"}, "--config", 3, 4, "c.yaml", false},
		{"empty-flag-value", []string{"bundle", "--config="}, "--config", -1, -1, "", true},
		{"no-value", []string{"bundle", "--config"}, "--config", -1, -1, "", true},
		{"value-is-flag", []string{"bundle", "--config", "--dev"}, "--config", -1, -1, "", true},
	}
}

func TestFindFlag(t *testing.T) {
	tests := getFlagTestCases()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actualIndex, actualValueIndex, actualValue, err := FindFlag(test.flagName, test.arguments)

			// Check errors.
			if err != nil && !test.expectErr {
				t.Error(err)
			}
			if err == nil && test.expectErr {
				t.Errorf("Expecting: error, Got: nil")
			}

			if err == nil {
				// Validate results.
				if actualValue != test.flagValue {
					t.Errorf("Expected flag value of: %s, got: %s.", test.flagValue, actualValue)
				}
				if actualValueIndex != test.flagValueIndex {
					t.Errorf("Expected flag value index of: %d, got: %d.", test.flagValueIndex, actualValueIndex)
				}
				if actualIndex != test.flagIndex {
					t.Errorf("Expected flag index of: %d, got: %d.", test.flagIndex, actualIndex)
				}
			}
		})
	}
}

func TestFindBooleanFlag(t *testing.T) {
	tests := []struct {
		name      string
		arguments []string
		flagName  string
		flagIndex int
		flagValue bool
	}{
		{"plain", []string{"bundle", "--debug"}, "--debug", 1, true},
		{"equals-true", []string{"bundle", "--debug=true"}, "--debug", 1, true},
		{"equals-false", []string{"bundle", "--debug=false"}, "--debug", 1, false},
		{"missing", []string{"bundle", "--dev"}, "--debug", -1, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			flagIndex, flagValue, err := FindBooleanFlag(test.flagName, test.arguments)
			if err != nil {
				t.Error(err)
			}
			if flagIndex != test.flagIndex {
				t.Errorf("Expected flag index of: %d, got: %d.", test.flagIndex, flagIndex)
			}
			if flagValue != test.flagValue {
				t.Errorf("Expected flag value of: %v, got: %v.", test.flagValue, flagValue)
			}
		})
	}
}

func TestExtractConfigFromArgs(t *testing.T) {
	args := []string{"forge", "bundle", "--config", "custom.yaml", "--entry-file", "index.js"}
	cleanArgs, configPath, err := ExtractConfigFromArgs(args)
	if err != nil {
		t.Error(err)
	}
	if configPath != "custom.yaml" {
		t.Errorf("Expected config path: custom.yaml, got: %s.", configPath)
	}
	expected := []string{"forge", "bundle", "--entry-file", "index.js"}
	if !reflect.DeepEqual(cleanArgs, expected) {
		t.Errorf("Expected command arguments: %v, got: %v.", expected, cleanArgs)
	}

	// The original slice must stay intact.
	if !reflect.DeepEqual(args, []string{"forge", "bundle", "--config", "custom.yaml", "--entry-file", "index.js"}) {
		t.Errorf("The original arguments were modified: %v", args)
	}

	// No --config flag at all.
	cleanArgs, configPath, err = ExtractConfigFromArgs([]string{"forge", "bundle"})
	if err != nil {
		t.Error(err)
	}
	if configPath != "" {
		t.Errorf("Expected empty config path, got: %s.", configPath)
	}
	if !reflect.DeepEqual(cleanArgs, []string{"forge", "bundle"}) {
		t.Errorf("Expected command arguments to be untouched, got: %v.", cleanArgs)
	}
}
