package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var data = `
a: Easy!
b:
  c: 2
  d: [3, 4]
`

type conf struct {
	A string
	B struct {
		C int
		D []int `yaml:",flow"`
	}
}

func (p *conf) Parse() error {
	return nil
}

func TestLoadYAML(t *testing.T) {
	config := conf{}
	assert.NoError(t, LoadYAML([]byte(data), &config))
	assert.Equal(t, "Easy!", config.A)
	assert.Equal(t, 2, config.B.C)
	assert.Equal(t, []int{3, 4}, config.B.D)

	assert.Error(t, LoadYAML(nil, &config))
}

var appConfigData = `
runtime:
  maxprocs: 0
validates:
  sname: v1
  rules:
  - name: minStr
    desc: "字符串不能够为空,且最小长度为1,最大长度为2"
    validators:
    - min: "1"
      name: strlen
      max: "2"
    - name: notempty
`

type configTest struct {
	AppConfig `yaml:",inline"`
	Extra     *extraConf `yaml:"extra"`
}

type extraConf struct {
	Name   string `yaml:"name"`
	parsed bool
}

func (p *extraConf) Parse() error {
	p.parsed = true
	return nil
}

func TestAppConfig(t *testing.T) {
	var appConfig configTest
	require.NoError(t, LoadYAML([]byte(appConfigData+"extra:\n  name: x\n"), &appConfig))
	require.NoError(t, Parse(&appConfig))
	assert.Nil(t, appConfig.LogConfig)
	assert.True(t, appConfig.Extra.parsed)
	assert.Equal(t, "x", appConfig.Extra.Name)

	v1, err := appConfig.GetValidateRuleConfig().NewService()
	require.NoError(t, err)
	assert.Error(t, v1.Validate("minStr", ""))
	assert.NoError(t, v1.Validate("minStr", "he"))
	assert.Error(t, v1.Validate("minStr", "hel"))
}

type mapLoader map[string]string

func (p mapLoader) Load(configPath string) ([]byte, error) {
	return []byte(p[configPath]), nil
}

func (p mapLoader) Exist(configPath string) (bool, error) {
	_, ok := p[configPath]
	return ok, nil
}

func TestLoadConfigByEnv(t *testing.T) {
	t.Setenv(EnvWorkfDir, "/srv")
	loader := mapLoader{
		"/srv/conf/conf_test.yaml": "a: from env file\n",
		"/srv/conf/common.yaml":    "b:\n  c: 3\n",
	}
	config := &conf{}
	require.NoError(t, LoadConfigByEnv(loader, config, "", EnvTest))
	assert.Equal(t, "from env file", config.A)
	assert.Equal(t, 3, config.B.C)

	config = &conf{}
	require.NoError(t, LoadConfigByEnv(loader, config, "", "missing"))
	assert.Equal(t, "", config.A)
	assert.Equal(t, 3, config.B.C)

	assert.Error(t, LoadConfigByEnv(mapLoader{}, &conf{}, "", EnvTest))
	assert.NoError(t, LoadConfigByEnv(mapLoader{}, &conf{}, "a: addon", EnvTest))
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	confDir := filepath.Join(dir, "conf")
	require.NoError(t, os.MkdirAll(confDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "conf_dev.yaml"), []byte(data), 0o644))
	t.Setenv(EnvWorkfDir, dir)

	exist, err := FileLoader.Exist(filepath.Join(confDir, "conf_dev.yaml"))
	assert.NoError(t, err)
	assert.True(t, exist)
	exist, err = FileLoader.Exist(confDir)
	assert.NoError(t, err)
	assert.False(t, exist)

	config := &conf{}
	require.NoError(t, LoadConfigByEnv(FileLoader, config, "", EnvDevelopment))
	assert.Equal(t, "Easy!", config.A)
}
