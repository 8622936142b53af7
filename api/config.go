package api

import (
	"sync"

	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	CacheConfig
	ServerConfig
}

type StorageConfig struct {
	TableNamePlayers    string
	TableNameTeams      string
	TableNameHoleScores string
	TableNameMatches    string
}

type CacheConfig struct {
	RedisAddress string
	TTLSeconds   int
}

type ServerConfig struct {
	Port int
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNamePlayers:    viper.GetString("storage.TableNamePlayers"),
			TableNameTeams:      viper.GetString("storage.TableNameTeams"),
			TableNameHoleScores: viper.GetString("storage.TableNameHoleScores"),
			TableNameMatches:    viper.GetString("storage.TableNameMatches"),
		},
		CacheConfig: CacheConfig{
			RedisAddress: viper.GetString("cache.RedisAddress"),
			TTLSeconds:   getIntOrDefault("cache.TTLSeconds", 30),
		},
		ServerConfig: ServerConfig{
			Port: viper.GetInt("server.port"),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
