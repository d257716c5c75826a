// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/ion-network/iond/corelog"
	"gitlab.com/ion-network/iond/types/chaincfg"
	"gopkg.in/yaml.v3"
)

// SimulationConfig drives the synthetic chain of the simulate command.  A
// zero spacing falls back to the nominal spacing of the selected network.
type SimulationConfig struct {
	Blocks       int32  `yaml:"blocks"`
	WorkSpacing  int64  `yaml:"work_spacing"`
	StakeSpacing int64  `yaml:"stake_spacing"`
	DataFile     string `yaml:"data_file"`
}

type Config struct {
	Net        string           `yaml:"net"`
	LogLevel   string           `yaml:"log_level"`
	Log        corelog.Config   `yaml:"log"`
	Simulation SimulationConfig `yaml:"simulation"`
}

func (cfg *Config) NetParams() *chaincfg.Params {
	return chaincfg.NetName(cfg.Net).Params()
}

func defaultConfig() Config {
	return Config{
		Net:      "mainnet",
		LogLevel: corelog.DefaultLevel.String(),
		Log:      corelog.Config{}.Default(),
		Simulation: SimulationConfig{
			Blocks:   2000,
			DataFile: "difficulty.csv",
		},
	}
}

// parseConfig loads the configuration from path.  A missing file is not an
// error; the defaults apply.
func parseConfig(path string) (Config, error) {
	rawFile, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to read configuration")
	}

	cfg := defaultConfig()
	if err = yaml.Unmarshal(rawFile, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "unable to decode configuration")
	}

	return cfg, nil
}
