// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"fmt"
	"log/slog"

	"github.com/AS207960/eppcore"
	"github.com/AS207960/eppcore/wire"
)

// Router implements [eppcore.RequestEncoder] and [eppcore.ResponseDecoder],
// translating every [eppcore.RequestKind] to and from its wire shape. It
// holds no per-session state beyond its logger: one Router is shared
// safely across every [eppcore.Session] a process runs.
type Router struct {
	logger eppcore.SLogger
}

// NewRouter returns a stateless [*Router]. logger may be nil, in which
// case [eppcore.DefaultSLogger] is used.
func NewRouter(logger eppcore.SLogger) *Router {
	if logger == nil {
		logger = eppcore.DefaultSLogger()
	}
	return &Router{logger: logger}
}

var _ eppcore.RequestEncoder = (*Router)(nil)
var _ eppcore.ResponseDecoder = (*Router)(nil)

func transferOp(kind eppcore.RequestKind) string {
	switch kind {
	case eppcore.KindDomainTransferQuery, eppcore.KindContactTransferQuery:
		return "query"
	case eppcore.KindDomainTransferRequest, eppcore.KindContactTransferRequest:
		return "request"
	case eppcore.KindDomainTransferAccept, eppcore.KindContactTransferAccept:
		return "approve"
	case eppcore.KindDomainTransferReject, eppcore.KindContactTransferReject:
		return "reject"
	case eppcore.KindDomainTransferCancel, eppcore.KindContactTransferCancel:
		return "cancel"
	default:
		return ""
	}
}

// Encode implements [eppcore.RequestEncoder]. It type-asserts req.Input to
// the shape package-level callers are expected to have supplied for
// req.Kind (built by whatever constructs the [eppcore.Request] — a type
// mismatch here is a programmer error, surfaced as [eppcore.ErrKindInternal]
// rather than a panic).
func (rt *Router) Encode(req *eppcore.Request, clTRID string, account *eppcore.AccountConfig, features *eppcore.ServerFeatures) (*wire.Envelope, error) {
	erratum := account.Erratum

	switch req.Kind {
	case eppcore.KindHello:
		return wire.NewHelloEnvelope(), nil

	case eppcore.KindLogout:
		return wire.NewLogoutCommand(clTRID), nil

	case eppcore.KindPollRequest:
		return encodePollRequest(clTRID), nil

	case eppcore.KindPollAck:
		// Accepts either the public PollAckInput struct (callers going
		// through the normal Request API) or a bare message-id string
		// (the dispatcher's internal poll pump, which has no import path
		// to this package's types — see eppcore/pollpump.go).
		if messageID, ok := req.Input.(string); ok {
			return encodePollAck(PollAckInput{MessageID: messageID}, clTRID), nil
		}
		input, err := inputAs[PollAckInput](req)
		if err != nil {
			return nil, err
		}
		return encodePollAck(input, clTRID), nil

	case eppcore.KindDomainCheck:
		input, err := inputAs[DomainCheckInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeDomainCheck(input)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(
			namestoreExtensionForNames(input.Names, features),
			domainFeeCheckExtension(input.Names, input.FeeCommand, input.Currency, features),
		)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Check: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindDomainInfo:
		input, err := inputAs[DomainInfoInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeDomainInfo(input)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(namestoreExtension(input.Name, features))
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Info: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindDomainCreate:
		input, err := inputAs[DomainCreateInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeDomainCreate(input)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(
			secDNSCreateExtension(input.DSData),
			namestoreExtension(input.Name, features),
			domainFeeCommandExtension("create", input.Currency, input.Fee, features),
		)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Create: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindDomainUpdate:
		input, err := inputAs[DomainUpdateInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeDomainUpdate(input)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(secDNSUpdateExtension(input), namestoreExtension(input.Name, features))
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Update: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindDomainDelete:
		input, err := inputAs[DomainDeleteInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeDomainDelete(input)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(namestoreExtension(input.Name, features))
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Delete: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindDomainRenew:
		input, err := inputAs[DomainRenewInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeDomainRenew(input)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(
			namestoreExtension(input.Name, features),
			domainFeeCommandExtension("renew", input.Currency, input.Fee, features),
		)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Renew: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindDomainTransferQuery, eppcore.KindDomainTransferRequest,
		eppcore.KindDomainTransferAccept, eppcore.KindDomainTransferReject, eppcore.KindDomainTransferCancel:
		input, err := inputAs[DomainTransferInput](req)
		if err != nil {
			return nil, err
		}
		transfer, err := encodeDomainTransfer(input)
		if err != nil {
			return nil, err
		}
		cmd := &wire.TransferCommand{Op: transferOp(req.Kind), Object: transfer}
		ext, err := buildExtension(
			namestoreExtension(input.Name, features),
			domainFeeCommandExtension("transfer", input.Currency, input.Fee, features),
		)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Transfer: cmd, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindDomainRestore:
		input, err := inputAs[DomainRestoreInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeDomainRestoreUpdate(input.Name)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(encodeDomainRestoreExtension(), namestoreExtension(input.Name, features))
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Update: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindDomainRestoreReport:
		input, err := inputAs[DomainRestoreReportInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeDomainRestoreUpdate(input.Name)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(encodeDomainRestoreReportExtension(input, erratum), namestoreExtension(input.Name, features))
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Update: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindHostCheck:
		input, err := inputAs[HostCheckInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeHostCheck(input)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(namestoreExtensionForNames(input.Names, features))
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Check: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindHostInfo:
		input, err := inputAs[HostInfoInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeHostInfo(input)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(namestoreExtension(input.Name, features))
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Info: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindHostCreate:
		input, err := inputAs[HostCreateInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeHostCreate(input)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(namestoreExtension(input.Name, features))
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Create: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindHostUpdate:
		input, err := inputAs[HostUpdateInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeHostUpdate(input)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(namestoreExtension(input.Name, features))
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Update: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindHostDelete:
		input, err := inputAs[HostDeleteInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeHostDelete(input)
		if err != nil {
			return nil, err
		}
		ext, err := buildExtension(namestoreExtension(input.Name, features))
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Delete: raw, Extension: ext, ClientTRID: clTRID}}, nil

	case eppcore.KindContactCheck:
		input, err := inputAs[ContactCheckInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeContactCheck(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Check: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindContactInfo:
		input, err := inputAs[ContactInfoInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeContactInfo(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Info: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindContactCreate:
		input, err := inputAs[ContactCreateInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeContactCreate(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Create: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindContactUpdate:
		input, err := inputAs[ContactUpdateInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeContactUpdate(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Update: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindContactDelete:
		input, err := inputAs[ContactDeleteInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeContactDelete(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Delete: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindContactTransferQuery, eppcore.KindContactTransferRequest,
		eppcore.KindContactTransferAccept, eppcore.KindContactTransferReject, eppcore.KindContactTransferCancel:
		input, err := inputAs[ContactTransferInput](req)
		if err != nil {
			return nil, err
		}
		transfer, err := encodeContactTransfer(input)
		if err != nil {
			return nil, err
		}
		cmd := &wire.TransferCommand{Op: transferOp(req.Kind), Object: transfer}
		return &wire.Envelope{Command: &wire.Command{Transfer: cmd, ClientTRID: clTRID}}, nil

	case eppcore.KindEmailForwardCheck:
		input, err := inputAs[EmailForwardCheckInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeEmailForwardCheck(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Check: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindEmailForwardInfo:
		input, err := inputAs[EmailForwardInfoInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeEmailForwardInfo(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Info: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindEmailForwardCreate:
		input, err := inputAs[EmailForwardCreateInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeEmailForwardCreate(input, erratum)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Create: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindEmailForwardUpdate:
		input, err := inputAs[EmailForwardUpdateInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeEmailForwardUpdate(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Update: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindEmailForwardDelete:
		input, err := inputAs[EmailForwardDeleteInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeEmailForwardDelete(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Delete: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindEmailForwardRenew:
		input, err := inputAs[EmailForwardRenewInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeEmailForwardRenew(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Renew: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindEuridHitPoints:
		raw, err := encodeEuridHitPointsInfo()
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Info: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindEuridRegistrationLimit:
		raw, err := encodeEuridRegistrationLimitInfo()
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Info: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindEuridDNSQuality:
		input, err := inputAs[EuridDNSQualityInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeEuridDNSQualityInfo(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Info: raw, ClientTRID: clTRID}}, nil

	case eppcore.KindRawBalanceQuery:
		input, err := inputAs[RawBalanceQueryInput](req)
		if err != nil {
			return nil, err
		}
		raw, err := encodeRawBalanceQuery(input)
		if err != nil {
			return nil, err
		}
		return &wire.Envelope{Command: &wire.Command{Info: raw, ClientTRID: clTRID}}, nil

	default:
		return nil, eppcore.NewInternalError(fmt.Sprintf("router: unhandled request kind %s", req.Kind))
	}
}

// Decode implements [eppcore.ResponseDecoder].
func (rt *Router) Decode(kind eppcore.RequestKind, resp *wire.Response, features *eppcore.ServerFeatures) (any, error) {
	if !resp.Success() {
		result, _ := resp.FirstResult()
		return nil, eppcore.NewServerError(eppcore.ResultCode(result.Code), result.Message, result.ExtraValues)
	}

	var exts []any
	if resp.Extension != nil {
		decoded, err := wire.DecodeExtensionElements(resp.Extension)
		if err != nil {
			rt.logger.Warn("eppExtensionDecodeError", slog.Any("err", err), slog.String("kind", kind.String()))
		} else {
			exts = decoded
		}
	}

	switch kind {
	case eppcore.KindHello, eppcore.KindLogout, eppcore.KindDomainUpdate, eppcore.KindHostUpdate,
		eppcore.KindContactUpdate, eppcore.KindEmailForwardUpdate, eppcore.KindDomainDelete,
		eppcore.KindHostDelete, eppcore.KindContactDelete, eppcore.KindEmailForwardDelete,
		eppcore.KindDomainRestore, eppcore.KindDomainRestoreReport:
		return nil, nil

	case eppcore.KindDomainCheck:
		return decodeDomainCheckData(resp.ResultData, exts)
	case eppcore.KindDomainInfo:
		return decodeDomainInfoData(resp.ResultData, exts)
	case eppcore.KindDomainCreate:
		return decodeDomainCreateData(resp.ResultData, exts)
	case eppcore.KindDomainRenew:
		return decodeDomainRenewData(resp.ResultData, exts)
	case eppcore.KindDomainTransferQuery, eppcore.KindDomainTransferRequest,
		eppcore.KindDomainTransferAccept, eppcore.KindDomainTransferReject, eppcore.KindDomainTransferCancel:
		return decodeDomainTransferData(resp.ResultData, exts)

	case eppcore.KindHostCheck:
		return decodeHostCheckData(resp.ResultData)
	case eppcore.KindHostInfo:
		return decodeHostInfoData(resp.ResultData)
	case eppcore.KindHostCreate:
		return decodeHostCreateData(resp.ResultData)

	case eppcore.KindContactCheck:
		return decodeContactCheckData(resp.ResultData)
	case eppcore.KindContactInfo:
		return decodeContactInfoData(resp.ResultData)
	case eppcore.KindContactCreate:
		return decodeContactCreateData(resp.ResultData)
	case eppcore.KindContactTransferQuery, eppcore.KindContactTransferRequest,
		eppcore.KindContactTransferAccept, eppcore.KindContactTransferReject, eppcore.KindContactTransferCancel:
		return decodeContactTransferData(resp.ResultData)

	case eppcore.KindEmailForwardCheck:
		return decodeEmailForwardCheckData(resp.ResultData)
	case eppcore.KindEmailForwardInfo:
		return decodeEmailForwardInfoData(resp.ResultData)
	case eppcore.KindEmailForwardCreate:
		return decodeEmailForwardCreateData(resp.ResultData)
	case eppcore.KindEmailForwardRenew:
		return decodeEmailForwardRenewData(resp.ResultData)

	case eppcore.KindPollRequest:
		poll, err := decodePoll(resp)
		if err != nil {
			return nil, err
		}
		return &poll, nil

	case eppcore.KindPollAck:
		return decodePollAckData(resp)

	case eppcore.KindEuridHitPoints:
		return decodeEuridHitPointsData(resp.ResultData)
	case eppcore.KindEuridRegistrationLimit:
		return decodeEuridRegistrationLimitData(resp.ResultData)
	case eppcore.KindEuridDNSQuality:
		return decodeEuridDNSQualityData(resp.ResultData)
	case eppcore.KindRawBalanceQuery:
		return decodeRawBalanceQuery(resp)

	default:
		return nil, eppcore.NewInternalError(fmt.Sprintf("router: unhandled response kind %s", kind))
	}
}

// DecodePoll implements [eppcore.ResponseDecoder].
func (rt *Router) DecodePoll(resp *wire.Response, features *eppcore.ServerFeatures) (eppcore.PollData, error) {
	return decodePoll(resp)
}

// inputAs type-asserts req.Input, returning an internal error shaped like
// every other router failure rather than panicking on a caller mistake.
func inputAs[T any](req *eppcore.Request) (T, error) {
	v, ok := req.Input.(T)
	if !ok {
		var zero T
		return zero, eppcore.NewInternalError(fmt.Sprintf("router: %s expects input type %T, got %T", req.Kind, zero, req.Input))
	}
	return v, nil
}
