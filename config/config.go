package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	JWT      JWT
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWT struct {
	Secret          string
	RefreshSecret   string
	AccessTTLHours  int
	RefreshTTLHours int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_SECRET", "edu_mobile_secret")
	viper.SetDefault("JWT_REFRESH_SECRET", "edu_mobile_refresh_secret")
	viper.SetDefault("JWT_ACCESS_TTL_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_TTL_HOURS", 168)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.RefreshSecret = viper.GetString("JWT_REFRESH_SECRET")
	config.JWT.AccessTTLHours = viper.GetInt("JWT_ACCESS_TTL_HOURS")
	config.JWT.RefreshTTLHours = viper.GetInt("JWT_REFRESH_TTL_HOURS")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
