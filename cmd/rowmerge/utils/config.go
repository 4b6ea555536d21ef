// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package utils

import (
	"github.com/hestia-earth/rowmerge/pkg/conf"
	"github.com/spf13/viper"
)

// GetConfig loads the aggregated configuration. The file path comes from
// the --config-file flag or the ROWMERGE_CONFIG_FILE env var through viper.
func GetConfig() (*conf.Config, error) {
	return conf.Aggregate(viper.GetString("config_file"))
}
