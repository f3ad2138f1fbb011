// Package imbcode fronts the Intelligent Mail barcode codec for callers that
// work with loosely-typed field maps rather than the imb.Record struct —
// configuration-driven pipelines, JSON handlers and the like. It defines the
// canonical field names and flattens repair reporting into reserved keys.
package imbcode

import (
	"strconv"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-imbcode/imb"
)

// Field names accepted by EncodeFields and returned by DecodeFields.
const (
	FieldBarcodeID   = "barcode_id"
	FieldServiceType = "service_type"
	FieldMailerID    = "mailer_id"
	FieldSerialNum   = "serial_num"
	FieldZip         = "zip"
	FieldPlus4       = "plus4"
	FieldDeliveryPt  = "delivery_pt"
)

// Keys DecodeFields adds alongside the field names when the barcode only
// decoded after repair. They use a "repair." prefix so they can never
// collide with a field name.
const (
	RepairMessageKey   = "repair.message"
	RepairSuggestedKey = "repair.suggested"
	RepairPositionsKey = "repair.positions"

	repairMessage = "Damaged barcode"
)

// EncodeFields encodes a field map to a 65-symbol barcode. Missing keys are
// treated as empty fields, so a nil map is legal input (and fails record
// validation, as no fields are present).
func EncodeFields(fields map[string]string) (string, error) {
	return imb.Encode(imb.Record{
		BarcodeID:   fields[FieldBarcodeID],
		ServiceType: fields[FieldServiceType],
		MailerID:    fields[FieldMailerID],
		SerialNum:   fields[FieldSerialNum],
		Zip:         fields[FieldZip],
		Plus4:       fields[FieldPlus4],
		DeliveryPt:  fields[FieldDeliveryPt],
	})
}

// DecodeFields decodes a barcode to a field map. Optional fields appear only
// when the barcode carries them. If the input needed repair, the map also
// holds RepairMessageKey, RepairSuggestedKey with the corrected barcode, and
// RepairPositionsKey with a comma-separated list of the 0-based symbol
// positions that were corrected.
func DecodeFields(barcode string) (map[string]string, error) {
	res, err := imb.Decode(barcode)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		FieldBarcodeID:   res.Record.BarcodeID,
		FieldServiceType: res.Record.ServiceType,
		FieldMailerID:    res.Record.MailerID,
		FieldSerialNum:   res.Record.SerialNum,
	}
	if res.Record.Zip != "" {
		fields[FieldZip] = res.Record.Zip
	}
	if res.Record.Plus4 != "" {
		fields[FieldPlus4] = res.Record.Plus4
	}
	if res.Record.DeliveryPt != "" {
		fields[FieldDeliveryPt] = res.Record.DeliveryPt
	}
	if res.Repair != nil {
		fields[RepairMessageKey] = repairMessage
		fields[RepairSuggestedKey] = res.Repair.Suggested
		positions := make([]string, len(res.Repair.Positions))
		for i, p := range res.Repair.Positions {
			positions[i] = strconv.Itoa(p)
		}
		fields[RepairPositionsKey] = strings.Join(positions, ",")
	}
	return fields, nil
}
