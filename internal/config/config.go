package config

import (
	"os"
	"strconv"
	"strings"
)

type AffectServerConfig struct {
	HTTPAddr         string
	RulesPath        string
	ReadBodyMaxBytes int64
	DBDSN            string
	MQTTBrokerURL    string
	MQTTClientID     string
	MQTTUsername     string
	MQTTPassword     string
	MQTTTopicPrefix  string
	RecentLimit      int
}

// LoadAffectServerConfig reads the server config from the environment.
// DB and MQTT are optional collaborators: an empty DSN runs the server
// without persistence, an empty broker URL without the renderer feed.
func LoadAffectServerConfig() AffectServerConfig {
	return AffectServerConfig{
		HTTPAddr:         getenvDefault("AFFECT_HTTP_ADDR", ":9020"),
		RulesPath:        os.Getenv("AFFECT_RULES_PATH"),
		ReadBodyMaxBytes: int64(getenvIntDefault("AFFECT_MAX_BODY_BYTES", 65536)),
		DBDSN:            os.Getenv("DB_DSN"),
		MQTTBrokerURL:    os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:     getenvDefault("AFFECT_MQTT_CLIENT_ID", "affect-server"),
		MQTTUsername:     os.Getenv("MQTT_USERNAME"),
		MQTTPassword:     os.Getenv("MQTT_PASSWORD"),
		MQTTTopicPrefix:  getenvDefault("MQTT_TOPIC_PREFIX", "visualizer"),
		RecentLimit:      getenvIntDefault("AFFECT_RECENT_LIMIT", 50),
	}
}

func getenvDefault(key, val string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return val
}

func getenvIntDefault(key string, val int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return val
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return val
	}
	return n
}
