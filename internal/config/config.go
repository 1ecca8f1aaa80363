package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	DB      DBConfig      `mapstructure:"db"`
	Cron    CronConfig    `mapstructure:"cron"`
	Bizinfo BizinfoConfig `mapstructure:"bizinfo"`
	Nara    NaraConfig    `mapstructure:"nara"`
	Import  ImportConfig  `mapstructure:"import"`
	Tagger  TaggerConfig  `mapstructure:"tagger"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type CronConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Import  string `mapstructure:"import"`
}

type BizinfoConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type NaraConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ImportConfig struct {
	Pages         int    `mapstructure:"pages"`
	PageUnit      int    `mapstructure:"page_unit"`
	SearchLclasID string `mapstructure:"search_lclas_id"`
	Hashtags      string `mapstructure:"hashtags"`
}

type TaggerConfig struct {
	Keywords []string `mapstructure:"keywords"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "Asia/Seoul")
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.import", "@every 6h")
	v.SetDefault("bizinfo.base_url", "https://www.bizinfo.go.kr/uss/rss/bizinfoApi.do")
	v.SetDefault("bizinfo.timeout", "15s")
	v.SetDefault("nara.base_url", "https://apis.data.go.kr/1230000/ad/BidPublicInfoService/getBidPblancListInfoCnstwkPPSSrch")
	v.SetDefault("nara.timeout", "15s")
	v.SetDefault("import.pages", 3)
	v.SetDefault("import.page_unit", 100)
	v.SetDefault("import.search_lclas_id", "")
	v.SetDefault("import.hashtags", "")
	v.SetDefault("tagger.keywords", defaultKeywords)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultKeywords drive the automatic tagger when no list is configured.
// Matching is case-sensitive literal substring, so list the forms the feeds use.
var defaultKeywords = []string{
	"수출",
	"창업",
	"R&D",
	"스타트업",
	"소상공인",
	"청년",
	"여성",
	"지역",
	"바우처",
	"융자",
	"보조금",
	"AI",
}
