package configparser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/drone/envsubst"
	"github.com/subosito/gotenv"
	"go.yaml.in/yaml/v3"
)

var ErrNoFilePath = errors.New("no file path provided")

const dotEnvFile = ".env"

// LoadAndParseYaml loads .env and the YAML file into the environment and
// then fills cfg from its `env`/`default` struct tags.
// A missing YAML file is not an error: defaults and the environment still apply.
func LoadAndParseYaml(filepath string, cfg any) error {
	if err := LoadDotEnv(dotEnvFile); err != nil {
		return err
	}

	if err := LoadYamlFile(filepath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return ParseEnv(cfg)
}

// LoadDotEnv loads variables from a dotenv file when it exists. Already set variables win.
func LoadDotEnv(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not stat %s: %w", filename, err)
	}

	if err := gotenv.Load(filename); err != nil {
		return fmt.Errorf("could not load %s: %w", filename, err)
	}
	return nil
}

// LoadYamlFile reads a YAML file and loads its leaves into the environment.
// Nested keys are joined with "_" and upper-cased (database.host -> DATABASE_HOST).
// Values may reference the environment with ${VAR:-default}.
func LoadYamlFile(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("could not open YAML file: %w", err)
	}

	expanded, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return fmt.Errorf("could not expand YAML file: %w", err)
	}

	root := map[string]any{}
	if err := yaml.Unmarshal([]byte(expanded), &root); err != nil {
		return fmt.Errorf("error reading YAML file: %w", err)
	}

	return setFlattened("", root)
}

func setFlattened(prefix string, node map[string]any) error {
	for key, value := range node {
		fullKey := strings.ToUpper(key)
		if prefix != "" {
			fullKey = prefix + "_" + fullKey
		}

		switch v := value.(type) {
		case nil:
			continue
		case map[string]any:
			if err := setFlattened(fullKey, v); err != nil {
				return err
			}
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				parts = append(parts, fmt.Sprint(item))
			}
			if err := setIfUnset(fullKey, strings.Join(parts, ",")); err != nil {
				return err
			}
		default:
			if err := setIfUnset(fullKey, fmt.Sprint(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Set the environment variable only if it's not already set
func setIfUnset(key, value string) error {
	if os.Getenv(key) != "" {
		return nil
	}
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("could not set env var %s: %w", key, err)
	}
	return nil
}
