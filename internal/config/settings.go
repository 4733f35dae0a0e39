package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Gandi    Gandi
	Record   Record
	Update   Update
	Client   Client
	PubIP    PubIP
	Server   Server
	Health   Health
	Logger   Logger
	Shoutrrr Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Gandi.setDefaults()
	c.Record.setDefaults()
	c.Client.setDefaults()
	c.PubIP.setDefaults()
	c.Server.setDefaults()
	c.Health.SetDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := []struct {
		name      string
		validator validator
	}{
		{name: "gandi", validator: &c.Gandi},
		{name: "record", validator: &c.Record},
		{name: "update", validator: &c.Update},
		{name: "client", validator: &c.Client},
		{name: "public ip", validator: &c.PubIP},
		{name: "server", validator: &c.Server},
		{name: "health", validator: &c.Health},
		{name: "logger", validator: &c.Logger},
		{name: "shoutrrr", validator: &c.Shoutrrr},
	}

	for _, v := range toValidate {
		err = v.validator.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", v.name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Gandi.toLinesNode())
	node.AppendNode(c.Record.toLinesNode())
	node.AppendNode(c.Update.toLinesNode())
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.PubIP.toLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader,
	warner Warner) (err error) {
	c.Gandi.read(reader)

	err = c.Record.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading record settings: %w", err)
	}

	err = c.Update.read(reader)
	if err != nil {
		return fmt.Errorf("reading update settings: %w", err)
	}

	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.PubIP.read(reader)
	if err != nil {
		return fmt.Errorf("reading public IP settings: %w", err)
	}

	err = c.Server.read(reader)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	c.Health.Read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}

type Warner interface {
	Warnf(format string, a ...interface{})
}
