package conf

import (
	"log"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

// InitConf loads the yaml config at path. A missing file is not fatal,
// the defaults below apply. When the file exists it is watched and
// reloaded on change.
func InitConf(path string) {
	Conf = viper.New()
	Conf.SetConfigFile(path)
	Conf.SetDefault("output.dir", "./out")
	Conf.SetDefault("report.precision", 6)
	Conf.SetDefault("solver.friction_model", "haaland")
	Conf.SetDefault("sweep.workers", 4)
	Conf.SetDefault("sweep.jitter", 0.05)

	if err := Conf.ReadInConfig(); err != nil {
		log.Printf("config %s not read, using defaults: %v", path, err)
		return
	}
	Conf.WatchConfig()
	Conf.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("config reloaded: %s", e.Name)
	})
}
