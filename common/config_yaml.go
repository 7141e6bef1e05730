package common

import (
	"errors"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// LoadYAMLFromPath 将YAML文件中的配置加载到到结构体target中
func LoadYAMLFromPath(filename string, target interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return LoadYAML(data, target)
}

// LoadYAML 将data中的YAML配置加载到到结构体target中
func LoadYAML(data []byte, target interface{}) error {
	if len(data) == 0 {
		return fmt.Errorf("Can't load yaml config from empty data")
	}
	return yaml.Unmarshal(data, target)
}

// LoadConfig 从configDir目录下的多个path指定的YAML配置文件中加载配置
func LoadConfig(config Configurer, addonConfig string, configDir string, pathes ...string) (err error) {
	return LoadConfigWithLoader(FileLoader, config, addonConfig, configDir, pathes...)
}

// LoadConfigWithLoader 使用指定的加载器加载配置,addonConfig在所有文件之前
func LoadConfigWithLoader(loader ConfigLoader, config Configurer, addonConfig string, configDir string, pathes ...string) (err error) {
	if loader == nil {
		err = errors.New("no loader")
		return
	}
	if len(pathes) == 0 && addonConfig == "" {
		return errInvalidConf
	}

	var content []byte
	if addonConfig != "" {
		content = append(content, addonConfig...)
		content = append(content, []byte("\n")...)
	}
	for _, p := range pathes {
		p = path.Join(configDir, p)
		Infof("load conf from:%s", p)
		cnt, err := loader.Load(p)
		if err != nil {
			return err
		}
		if len(cnt) == 0 {
			Warnf("empty content in %s", p)
			continue
		}
		content = append(content, cnt...)
		content = append(content, []byte("\n")...)
	}
	return LoadYAML(content, config)
}

// CommonConfs 各环境共享的配置文件,在conf_<env>.yaml之后加载
var CommonConfs = []string{"common.yaml"}

// LoadConfigByEnv 从工作目录下的conf目录加载env对应的配置文件conf_<env>.yaml以及CommonConfs,
// 不存在的文件被跳过;工作目录可以通过环境变量EnvWorkfDir指定
func LoadConfigByEnv(loader ConfigLoader, config Configurer, addonConfig string, env string) error {
	workDir := os.Getenv(EnvWorkfDir)
	if workDir == "" {
		workDir = "."
	}
	confDir := path.Join(workDir, "conf")
	Infof("work dir:%s", workDir)

	allConfs := append([]string{"conf_" + env + ".yaml"}, CommonConfs...)
	existConfs := []string{}
	for _, confFile := range allConfs {
		exist, err := loader.Exist(path.Join(confDir, confFile))
		if err != nil {
			return err
		}
		if !exist {
			Warnf("config %s does not exist,skip", confFile)
			continue
		}
		existConfs = append(existConfs, confFile)
	}
	if len(existConfs) == 0 && addonConfig == "" {
		return fmt.Errorf("no config found in %s for env %s", confDir, env)
	}
	return LoadConfigWithLoader(loader, config, addonConfig, confDir, existConfs...)
}
