/*
Copyright © 2026 masteryyh <yyh991013@163.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type ConfigManager struct {
	cfg    *AppConfig
	vipers *viper.Viper
}

func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		cfg:    &AppConfig{},
		vipers: viper.New(),
	}
}

func (cm *ConfigManager) GetConfig() *AppConfig {
	return cm.cfg
}

func (cm *ConfigManager) Validate() error {
	return cm.cfg.Validate()
}

func (cm *ConfigManager) BindEnvVariables() {
	cm.vipers.SetEnvPrefix("TABLEKIT")
	cm.vipers.AutomaticEnv()
	cm.vipers.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envs := map[string]string{
		"port":        "TABLEKIT_PORT",
		"debug":       "TABLEKIT_DEBUG",
		"db.driver":   "TABLEKIT_DB_DRIVER",
		"db.path":     "TABLEKIT_DB_PATH",
		"db.host":     "TABLEKIT_DB_HOST",
		"db.port":     "TABLEKIT_DB_PORT",
		"db.username": "TABLEKIT_DB_USERNAME",
		"db.password": "TABLEKIT_DB_PASSWORD",
		"db.database": "TABLEKIT_DB_DATABASE",
		"db.seed":     "TABLEKIT_DB_SEED",
	}

	for key, env := range envs {
		cm.vipers.BindEnv(key, env)
	}
}

func (cm *ConfigManager) SetDefaults() {
	cm.vipers.SetDefault("port", 8080)
	cm.vipers.SetDefault("db.driver", string(DriverSQLite))
	cm.vipers.SetDefault("db.path", "tablekit.db")
}

// LoadConfig reads tablekit.yaml from the given paths and the default ones.
// An explicit file path is used as is.
func (cm *ConfigManager) LoadConfig(configPaths ...string) error {
	cm.SetDefaults()

	cm.vipers.SetConfigName("tablekit")
	cm.vipers.SetConfigType("yaml")

	defaultPaths := []string{
		".",
		"./config",
		"./configs",
		"/etc/tablekit",
		"$HOME/.tablekit",
	}

	for _, path := range configPaths {
		if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
			cm.vipers.SetConfigFile(path)
			continue
		}
		cm.vipers.AddConfigPath(path)
	}
	for _, path := range defaultPaths {
		cm.vipers.AddConfigPath(path)
	}

	if err := cm.vipers.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Warn("no config file found, using defaults")
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		slog.Info("using config file", "path", cm.vipers.ConfigFileUsed())
	}

	if err := cm.mergeFragments(); err != nil {
		return err
	}

	if err := cm.vipers.Unmarshal(cm.cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return nil
}

// mergeFragments merges tablekit.*.yaml files living next to the main config,
// so each table can be described in its own file.
func (cm *ConfigManager) mergeFragments() error {
	configFile := cm.vipers.ConfigFileUsed()
	if configFile == "" {
		return nil
	}

	dir := filepath.Dir(configFile)
	base := strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile))

	var fragments []string
	for _, ext := range []string{"yaml", "yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("%s.*.%s", base, ext)))
		if err != nil {
			return fmt.Errorf("failed to look up config fragments: %w", err)
		}
		fragments = append(fragments, matches...)
	}
	sort.Strings(fragments)

	for _, fragment := range fragments {
		if filepath.Clean(fragment) == filepath.Clean(configFile) {
			continue
		}

		cm.vipers.SetConfigFile(fragment)
		if err := cm.vipers.MergeInConfig(); err != nil {
			return fmt.Errorf("failed to merge config fragment %q: %w", fragment, err)
		}
		slog.Info("merged config fragment", "path", fragment)
	}
	cm.vipers.SetConfigFile(configFile)
	return nil
}

var (
	globalConfigManager *ConfigManager
	once                sync.Once
)

func Init(files ...string) error {
	var err error
	once.Do(func() {
		globalConfigManager = NewConfigManager()
		globalConfigManager.BindEnvVariables()

		if err = globalConfigManager.LoadConfig(files...); err != nil {
			return
		}

		err = globalConfigManager.Validate()
	})
	return err
}

func GetConfigManager() *ConfigManager {
	return globalConfigManager
}
