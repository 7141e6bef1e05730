package common

// 运行环境
const (
	// EnvDevelopment 开发环境
	EnvDevelopment = "dev"
	// EnvTest 测试环境
	EnvTest = "test"
	// EnvProduction 生产环境
	EnvProduction = "production"
)

// EnvWorkfDir 指定工作目录的环境变量,配置文件从工作目录下的conf目录加载
const EnvWorkfDir = "HITCOUNTER_WORKDIR"
