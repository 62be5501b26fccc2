package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

var (
	Port      string
	LogLevel  string
	DBDialect string
	DBSource  string
	AWSRegion string
	S3Bucket  string
)

func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("cmd/config/")
	viper.AddConfigPath(".")

	viper.SetDefault("port", "3000")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("database.dialect", "sqlite3")
	viper.SetDefault("database.source", "videoshare.db")
	viper.SetDefault("aws.region", "us-east-1")
	viper.SetDefault("aws.s3_bucket", "videos")

	viper.BindEnv("port", "PORT")
	viper.BindEnv("log.level", "LOG_LEVEL")
	viper.BindEnv("database.dialect", "SQL_DIALECT")
	viper.BindEnv("database.source", "SQL_SOURCE")
	viper.BindEnv("database.user", "SQL_USER")
	viper.BindEnv("database.password", "SQL_PASSWORD")
	viper.BindEnv("database.name", "SQL_DB")
	viper.BindEnv("database.server", "SQL_SERVER")
	viper.BindEnv("aws.region", "AWS_REGION")
	viper.BindEnv("aws.s3_bucket", "S3_BUCKET")

	// The config file is optional; env variables and defaults cover a
	// full deployment.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	Port = viper.GetString("port")
	LogLevel = viper.GetString("log.level")
	DBDialect = viper.GetString("database.dialect")
	DBSource = viper.GetString("database.source")
	AWSRegion = viper.GetString("aws.region")
	S3Bucket = viper.GetString("aws.s3_bucket")

	// SQL Server deployments configure host and credentials piecemeal;
	// assemble them into a DSN.
	if DBDialect == "mssql" && viper.GetString("database.server") != "" {
		DBSource = fmt.Sprintf("sqlserver://%s:%s@%s?database=%s",
			viper.GetString("database.user"),
			viper.GetString("database.password"),
			viper.GetString("database.server"),
			viper.GetString("database.name"))
	}
}
