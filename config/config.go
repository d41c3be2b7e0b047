package config

type AppConfig struct {
	TableConfig *TableConfig
	LogConfig   *LogConfig
}

func New() *AppConfig {
	return &AppConfig{
		TableConfig: NewTableConfig(),
		LogConfig:   NewLogConfig(),
	}
}
