// counterd 计数器服务
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/d0ngw/hitcounter/app"
	c "github.com/d0ngw/hitcounter/common"
)

func main() {
	defaultEnv := os.Getenv("HITCOUNTER_ENV")
	if defaultEnv == "" {
		defaultEnv = c.EnvDevelopment
	}
	envName := flag.String("env", defaultEnv, "config env, load conf/conf_<env>.yaml")
	flag.Parse()

	conf, err := app.Load(*envName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config fail:%v\n", err)
		os.Exit(1)
	}

	counterApp, err := app.New(conf)
	if err != nil {
		c.Errorf("create app fail:%v", err)
		c.SyncLog()
		os.Exit(1)
	}

	if err = counterApp.Start(); err != nil {
		c.Errorf("start app fail:%v", err)
		c.SyncLog()
		os.Exit(1)
	}

	hook := c.NewShutdownhook()
	hook.AddHook(counterApp.Stop)
	hook.WaitShutdown()
}
