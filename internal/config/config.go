// Package config loads a shipping network definition — locations,
// segments, fleets, and customers — from a YAML file, with environment
// variable overrides layered on top via viper/godotenv, matching the
// config-loading idiom the example pack uses for service configuration.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Location is one entry of the "locations" list in the config file.
type Location struct {
	Name string `yaml:"name" validate:"required"`
	Kind string `yaml:"kind" validate:"required,oneof=Customer Port TruckTerminal BoatTerminal PlaneTerminal"`
}

// Segment is one entry of the "segments" list.
type Segment struct {
	Name          string   `yaml:"name" validate:"required"`
	Mode          string   `yaml:"mode" validate:"required,oneof=truck boat plane"`
	Source        string   `yaml:"source" validate:"required"`
	ReturnSegment string   `yaml:"returnSegment"`
	Length        float64  `yaml:"length" validate:"gte=0"`
	Difficulty    float64  `yaml:"difficulty" validate:"gte=1,lte=5"`
	PathModes     []string `yaml:"pathModes" validate:"dive,oneof=expedited unexpedited"`
	Capacity      int      `yaml:"capacity" validate:"gte=0"`
}

// FleetModeRates maps a transport mode name ("truck"/"boat"/"plane") to
// a numeric rate for one of a fleet's per-mode tables.
type FleetModeRates map[string]float64

// Fleet is one entry of the "fleets" list.
type Fleet struct {
	Name      string         `yaml:"name" validate:"required"`
	StartTime *float64       `yaml:"startTime" validate:"omitempty,gte=0,lt=24"`
	Speed     FleetModeRates `yaml:"speed"`
	Cost      FleetModeRates `yaml:"cost"`
	Capacity  FleetModeRates `yaml:"capacity"`
}

// Customer is one entry of the "customers" list.
type Customer struct {
	Location      string  `yaml:"location" validate:"required"`
	TransferRate  float64 `yaml:"transferRate" validate:"gte=0"`
	ShipmentSize  int     `yaml:"shipmentSize" validate:"gte=0"`
	Destination   string  `yaml:"destination" validate:"required"`
}

// Network is the full on-disk network definition spec.md §3 and
// SPEC_FULL.md describe.
type Network struct {
	Locations []Location `yaml:"locations" validate:"dive"`
	Segments  []Segment  `yaml:"segments" validate:"dive"`
	Fleets    []Fleet    `yaml:"fleets" validate:"dive"`
	Customers []Customer `yaml:"customers" validate:"dive"`
}

var validate = validator.New()

// Load reads path as YAML into a Network, applies environment overrides
// through viper (with .env file support via godotenv, matching
// acdtunes-spacetraders's config layering), and validates the result.
func Load(path string) (*Network, error) {
	if envPath := ".env"; fileExists(envPath) {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var net Network
	if err := yaml.Unmarshal(raw, &net); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	v := viper.New()
	v.SetEnvPrefix("SHIPSIM")
	v.AutomaticEnv()
	applyFleetSpeedOverride(&net, v)

	if err := validate.Struct(&net); err != nil {
		return nil, fmt.Errorf("validate config %q: %w", path, err)
	}
	return &net, nil
}

// applyFleetSpeedOverride lets SHIPSIM_FLEET_<NAME>_TRUCK_SPEED
// environment variables override a fleet's truck speed without editing
// the YAML file. It is the only environment override this loader
// applies; no other field can be overridden this way.
func applyFleetSpeedOverride(net *Network, v *viper.Viper) {
	for i := range net.Fleets {
		key := "fleet_" + net.Fleets[i].Name + "_truck_speed"
		if !v.IsSet(key) {
			continue
		}
		if net.Fleets[i].Speed == nil {
			net.Fleets[i].Speed = FleetModeRates{}
		}
		net.Fleets[i].Speed["truck"] = v.GetFloat64(key)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
