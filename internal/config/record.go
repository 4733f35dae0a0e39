package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/qdm12/gandyn/internal/models"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
	"golang.org/x/net/publicsuffix"
)

type Record struct {
	Domain string
	Type   string
	Name   string
	TTL    time.Duration
}

func (r *Record) setDefaults() {
	r.Type = gosettings.DefaultComparable(r.Type, "A")
	r.Name = gosettings.DefaultComparable(r.Name, "@")
	const defaultTTL = 5 * time.Minute
	r.TTL = gosettings.DefaultComparable(r.TTL, defaultTTL)
}

var (
	ErrDomainNotSet        = errors.New("domain is not set")
	ErrDomainNotValid      = errors.New("domain is not valid")
	ErrDomainNotRegistered = errors.New("domain is not a registered domain")
	ErrRecordNameNotValid  = errors.New("record name is not valid")
	ErrTTLTooLow           = errors.New("TTL is too low")
	ErrTTLNotWholeSeconds  = errors.New("TTL is not a whole number of seconds")
)

// MinimumTTL is the lowest TTL accepted by the provider.
const MinimumTTL = 5 * time.Minute

func (r Record) Validate() (err error) {
	err = validateDomain(r.Domain)
	if err != nil {
		return err
	}

	err = validate.IsOneOf(r.Type, "A")
	if err != nil {
		return fmt.Errorf("record type: %w", err)
	}

	if r.Name != "@" {
		_, ok := dns.IsDomainName(r.Name)
		if !ok || strings.HasSuffix(r.Name, ".") {
			return fmt.Errorf("%w: %q", ErrRecordNameNotValid, r.Name)
		}
	}

	switch {
	case r.TTL < MinimumTTL:
		return fmt.Errorf("%w: %s must be at least %s", ErrTTLTooLow, r.TTL, MinimumTTL)
	case r.TTL%time.Second != 0:
		return fmt.Errorf("%w: %s", ErrTTLNotWholeSeconds, r.TTL)
	}

	return nil
}

func validateDomain(domain string) (err error) {
	if domain == "" {
		return ErrDomainNotSet
	}

	_, ok := dns.IsDomainName(domain)
	if !ok || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("%w: %q", ErrDomainNotValid, domain)
	}

	registered, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDomainNotValid, err)
	} else if registered != domain {
		return fmt.Errorf("%w: %s belongs to %s, use RECORD_NAME for the subdomain part",
			ErrDomainNotRegistered, domain, registered)
	}

	return nil
}

func (r Record) String() string {
	return r.toLinesNode().String()
}

func (r Record) toLinesNode() *gotree.Node {
	node := gotree.New("Record")
	node.Appendf("Domain: %s", r.Domain)
	node.Appendf("Name: %s", r.Name)
	node.Appendf("Type: %s", r.Type)
	node.Appendf("TTL: %s", r.TTL)
	return node
}

// Filter returns the criteria selecting the records to update.
func (r Record) Filter() models.RecordFilter {
	return models.RecordFilter{
		Name: r.Name,
		Type: r.Type,
	}
}

func (r *Record) read(envReader *reader.Reader, warner Warner) (err error) {
	r.Domain = envReader.String("DOMAIN", reader.ForceLowercase(true))
	r.Name = envReader.String("RECORD_NAME", reader.ForceLowercase(true))
	r.Type = strings.ToUpper(envReader.String("RECORD_TYPE"))
	r.TTL, err = readTTL(envReader, warner)
	return err
}

func readTTL(r *reader.Reader, warner Warner) (ttl time.Duration, err error) {
	s := r.Get("TTL")
	if s == nil {
		return 0, nil
	}

	// Plain integers are treated as seconds, as the provider does.
	seconds, err := strconv.Atoi(*s)
	if err == nil {
		warner.Warnf("TTL %s has no unit, treating it as %s", *s, time.Duration(seconds)*time.Second)
		return time.Duration(seconds) * time.Second, nil
	}

	ttl, err = time.ParseDuration(*s)
	if err != nil {
		return 0, fmt.Errorf("environment variable TTL: %w", err)
	}
	return ttl, nil
}
