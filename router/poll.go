// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"github.com/AS207960/eppcore"
	"github.com/AS207960/eppcore/wire"
)

func encodePollRequest(clTRID string) *wire.Envelope {
	return wire.NewPollRequestCommand(clTRID)
}

func encodePollAck(input PollAckInput, clTRID string) *wire.Envelope {
	return wire.NewPollAckCommand(input.MessageID, clTRID)
}

func decodePollAckData(resp *wire.Response) (*PollAckResult, error) {
	if resp.MessageQueue == nil {
		return &PollAckResult{}, nil
	}
	return &PollAckResult{MessageID: resp.MessageQueue.ID, MessageCount: resp.MessageQueue.Count}, nil
}

// decodePoll classifies an unsolicited (or <poll op="req">) response into
// a [eppcore.PollData]: the <msgQ> envelope plus a kind-tagged payload
// decoded via the extension registry (§3, §4.4).
func decodePoll(resp *wire.Response) (eppcore.PollData, error) {
	data := eppcore.PollData{Kind: eppcore.PollKindUnknown}

	if resp.MessageQueue != nil {
		data.MessageID = resp.MessageQueue.ID
		data.MessageCount = resp.MessageQueue.Count
		if resp.MessageQueue.QueueDate != nil {
			data.QueuedAt = *resp.MessageQueue.QueueDate
		}
		if resp.MessageQueue.Message != nil {
			data.Message = string(resp.MessageQueue.Message.Inner)
		}
	}

	if resp.ResultData != nil {
		data.Raw = resp.ResultData.Inner
		switch resp.ResultData.XMLName.Space + " " + resp.ResultData.XMLName.Local {
		case wire.DomainNamespace + " trnData":
			var trn wire.DomainTransferData
			if err := unmarshalRaw(resp.ResultData, &trn); err == nil {
				data.Kind = eppcore.PollKindTransfer
				data.Payload = &DomainTransferResult{
					Name: trn.Name, TransferStatus: parseTransferStatus(trn.TransferStatus),
					RequestClient: trn.RequestClient, RequestDate: parseEPPTime(trn.RequestDate),
					ActionClient: trn.ActionClient, ActionDate: parseEPPTime(trn.ActionDate),
					ExpireDate: parseEPPTime(trn.ExpireDate),
				}
			}
		case wire.ContactNamespace + " trnData":
			var trn wire.ContactTransferData
			if err := unmarshalRaw(resp.ResultData, &trn); err == nil {
				data.Kind = eppcore.PollKindTransfer
				data.Payload = &ContactTransferResult{
					ID: trn.ID, TransferStatus: parseTransferStatus(trn.TransferStatus),
					RequestClient: trn.RequestClient, RequestDate: parseEPPTime(trn.RequestDate),
					ActionClient: trn.ActionClient, ActionDate: parseEPPTime(trn.ActionDate),
				}
			}
		case wire.EmailForwardNamespace + " trnData":
			data.Kind = eppcore.PollKindEmailForwardTransfer
		}
	}

	if resp.Extension != nil {
		elements, err := wire.DecodeExtensionElements(resp.Extension)
		if err == nil {
			for _, el := range elements {
				switch v := el.(type) {
				case *wire.EuridHitPointsInfData:
					data.Kind = eppcore.PollKindEuridHitPoints
					data.Payload = &EuridHitPointsResult{HitPoints: v.HitPoints, MaxHitPoints: v.MaxHitPoints, Blocked: v.Blocked}
				case *wire.EuridRegistrarFinancePollData:
					data.Kind = eppcore.PollKindEuridRegistrarFinance
					data.Payload = v
				case *wire.NominetNotification:
					data.Kind = eppcore.PollKindNominetNotification
					data.Payload = v
				case *wire.VerisignLowBalancePollData:
					data.Kind = eppcore.PollKindVerisignLowBalance
					data.Payload = v
				case *wire.ChangePollData:
					data.Kind = eppcore.PollKindChangePoll
					data.Payload = v
				case *wire.RGPPanData:
					data.Kind = eppcore.PollKindDelete
					data.Payload = v
				case *wire.LaunchPanData:
					data.Payload = v
				}
			}
		}
	}

	return data, nil
}
