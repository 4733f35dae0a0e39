package ipextract

import (
	"net/netip"
	"strings"
)

const ipv4Alphabet = "0123456789."

// IPv4 returns the distinct IPv4 addresses found in the text,
// in their order of appearance. Addresses must be delimited by
// characters outside of the dotted quad alphabet (0123456789.).
// Scanning is several times faster than a regular expression.
func IPv4(text string) (addresses []netip.Addr) {
	seen := make(map[netip.Addr]struct{})
	for _, candidate := range tokens(text) {
		address, ok := parseIPv4(candidate)
		if !ok {
			continue
		}
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		addresses = append(addresses, address)
	}
	return addresses
}

// FirstIPv4 returns the first IPv4 address found in the text,
// and false if there is none.
func FirstIPv4(text string) (address netip.Addr, ok bool) {
	for _, candidate := range tokens(text) {
		address, ok = parseIPv4(candidate)
		if ok {
			return address, true
		}
	}
	return netip.Addr{}, false
}

// tokens splits the text into maximal runs of the IPv4 alphabet,
// with the dots surrounding each run trimmed, so an address ending
// a sentence is still found.
func tokens(text string) (runs []string) {
	start := -1
	for i := 0; i <= len(text); i++ {
		inAlphabet := i < len(text) && strings.IndexByte(ipv4Alphabet, text[i]) >= 0
		switch {
		case inAlphabet && start == -1:
			start = i
		case !inAlphabet && start != -1:
			run := strings.Trim(text[start:i], ".")
			if run != "" {
				runs = append(runs, run)
			}
			start = -1
		}
	}
	return runs
}

func parseIPv4(s string) (address netip.Addr, ok bool) {
	address, err := netip.ParseAddr(s)
	if err != nil || !address.Is4() {
		return netip.Addr{}, false
	}
	return address, true
}
