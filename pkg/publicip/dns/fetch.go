package dns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"

	"github.com/miekg/dns"
)

var (
	ErrRcodeNotSuccess       = errors.New("response code is not success")
	ErrAnswerNotReceived     = errors.New("response answer not received")
	ErrAnswerTypeNotExpected = errors.New("answer type is not expected")
	ErrRecordEmpty           = errors.New("record is empty")
	ErrTooManyTXTRecords     = errors.New("too many TXT records")
	ErrIPMalformed           = errors.New("IP address malformed")
)

func fetch(ctx context.Context, client Client, data providerData) (
	publicIPs []netip.Addr, err error) {
	message := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Opcode: dns.OpcodeQuery,
		},
		Question: []dns.Question{
			{
				Name:   data.fqdn,
				Qtype:  data.qType,
				Qclass: data.class,
			},
		},
	}

	const dnsOverTLSPort = "853"
	address := net.JoinHostPort(data.Address, dnsOverTLSPort)
	response, _, err := client.ExchangeContext(ctx, message, address)
	if err != nil {
		return nil, err
	}

	if response.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("%w: %s", ErrRcodeNotSuccess,
			dns.RcodeToString[response.Rcode])
	} else if len(response.Answer) == 0 {
		return nil, fmt.Errorf("%w", ErrAnswerNotReceived)
	}

	publicIPs = make([]netip.Addr, 0, len(response.Answer))
	for _, answer := range response.Answer {
		var publicIP netip.Addr
		switch record := answer.(type) {
		case *dns.TXT:
			publicIP, err = handleTXT(record)
			if err != nil {
				return nil, fmt.Errorf("handling TXT answer: %w", err)
			}
		case *dns.A:
			publicIP, _ = netip.AddrFromSlice(record.A.To4())
			if !publicIP.IsValid() {
				return nil, fmt.Errorf("handling A answer: %w: %s",
					ErrIPMalformed, record.A)
			}
		default:
			return nil, fmt.Errorf("%w: %T", ErrAnswerTypeNotExpected, answer)
		}
		publicIPs = append(publicIPs, publicIP)
	}

	return publicIPs, nil
}

func handleTXT(record *dns.TXT) (publicIP netip.Addr, err error) {
	switch len(record.Txt) {
	case 0:
		return publicIP, fmt.Errorf("%w", ErrRecordEmpty)
	case 1:
	default:
		return publicIP, fmt.Errorf("%w: %d instead of 1",
			ErrTooManyTXTRecords, len(record.Txt))
	}

	publicIP, err = netip.ParseAddr(record.Txt[0])
	if err != nil {
		return publicIP, fmt.Errorf("%w: %w", ErrIPMalformed, err)
	}
	return publicIP, nil
}
