package imbcode

import (
	"strconv"
	"strings"
	"testing"

	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-imbcode/imb"
)

func fullFields() map[string]string {
	return map[string]string{
		FieldBarcodeID:   "00",
		FieldServiceType: "270",
		FieldMailerID:    "103502",
		FieldSerialNum:   "017955971",
		FieldZip:         "50310",
		FieldPlus4:       "1605",
		FieldDeliveryPt:  "15",
	}
}

func TestFields_RoundTrip(t *testing.T) {
	w := expect.WrapT(t)

	in := fullFields()
	barcode := w.ShouldHaveResult(EncodeFields(in)).(string)
	w.ShouldBeEqual(len(barcode), 65)

	out := w.ShouldHaveResult(DecodeFields(barcode)).(map[string]string)
	w.StopOnMismatch().ShouldBeEqual(len(out), len(in))
	for key, want := range in {
		w.As(key).ShouldBeEqual(out[key], want)
	}
}

func TestFields_OptionalOmitted(t *testing.T) {
	w := expect.WrapT(t)

	in := map[string]string{
		FieldBarcodeID:   "01",
		FieldServiceType: "234",
		FieldMailerID:    "567094",
		FieldSerialNum:   "987654321",
	}
	barcode := w.ShouldHaveResult(EncodeFields(in)).(string)
	out := w.ShouldHaveResult(DecodeFields(barcode)).(map[string]string)

	w.ShouldBeEqual(len(out), len(in))
	for key, want := range in {
		w.As(key).ShouldBeEqual(out[key], want)
	}
	_, hasZip := out[FieldZip]
	w.As("zip").ShouldBeFalse(hasZip)
	_, hasRepair := out[RepairMessageKey]
	w.As("repair").ShouldBeFalse(hasRepair)
}

func TestFields_DamagedBarcode(t *testing.T) {
	w := expect.WrapT(t)

	in := fullFields()
	barcode := w.ShouldHaveResult(EncodeFields(in)).(string)

	// damage one tracker bar; the decoder repairs it and says so
	pos := strings.IndexByte(barcode, 'T')
	w.StopOnMismatch().ShouldBeTrue(pos >= 0)
	damaged := barcode[:pos] + "F" + barcode[pos+1:]

	out := w.ShouldHaveResult(DecodeFields(damaged)).(map[string]string)
	w.ShouldBeEqual(out[FieldZip], in[FieldZip])
	w.ShouldBeEqual(out[FieldSerialNum], in[FieldSerialNum])
	w.ShouldBeEqual(out[RepairMessageKey], "Damaged barcode")
	w.ShouldBeEqual(out[RepairSuggestedKey], barcode)
	w.ShouldBeEqual(out[RepairPositionsKey], strconv.Itoa(pos))
}

func TestFields_Errors(t *testing.T) {
	w := expect.WrapT(t)

	_, err := EncodeFields(nil)
	w.As("empty record").ShouldFail(err)
	w.ShouldBeTrue(imb.IsValidation(err))

	_, err = DecodeFields("TTTT")
	w.As("short barcode").ShouldFail(err)
	w.ShouldBeTrue(imb.IsDecoding(err))
}
