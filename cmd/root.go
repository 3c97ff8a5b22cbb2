package cmd

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/hh-resume/internal/extract"
	"github.com/spigell/hh-resume/internal/render"
	"github.com/spigell/hh-resume/internal/resume"
	"github.com/spigell/hh-resume/internal/server"
)

const (
	app       = "hh-resume"
	envPrefix = "HH_RESUME"
)

type Config struct {
	Profile        string            `mapstructure:"profile"`
	Profiles       map[string]any    `mapstructure:"profiles"`
	Headings       map[string]string `mapstructure:"headings"`
	KnownCompanies []string          `mapstructure:"known-companies"`
	Rules          extract.Rules     `mapstructure:"rules"`
	CoverLetter    *struct {
		Prefaces []string `mapstructure:"prefaces"`
	} `mapstructure:"cover-letter"`
	Education *struct {
		Mode string `mapstructure:"mode"`
	} `mapstructure:"education"`
	Render *RenderConfig  `mapstructure:"render"`
	Server *server.Config `mapstructure:"server"`
}

type RenderConfig struct {
	Template     string        `mapstructure:"template"`
	TemplatesDir string        `mapstructure:"templates-dir"`
	Browser      string        `mapstructure:"browser"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hh-resume turns a plain-text résumé into structured data, HTML and PDF",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hh-resume.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "profile with identity fields (default is \"default\")")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	serverDefaults := server.DefaultConfig()

	v.SetDefault("profile", resume.DefaultProfileName)
	v.SetDefault("education.mode", resume.EducationFixed)
	v.SetDefault("render.template", render.DefaultTemplate)
	v.SetDefault("render.templates-dir", "")
	v.SetDefault("render.browser", "")
	v.SetDefault("render.timeout", "60s")
	v.SetDefault("server.listen", serverDefaults.Listen)
	v.SetDefault("server.read-timeout", serverDefaults.ReadTimeout)
	v.SetDefault("server.write-timeout", serverDefaults.WriteTimeout)
}

func initConfig() {
	// Values from .env are visible to viper as regular environment variables.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The config file is optional, but an explicit or broken one must be readable.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
