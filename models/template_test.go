package models

import "testing"

func TestChildUnitList_ScanJSONB(t *testing.T) {
	raw := []byte(`[{"unit":"bag 50kg","code":"B50","conversion_value":50,"kiotviet_id":7}]`)

	var l ChildUnitList
	if err := l.Scan(raw); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(l) != 1 || l[0].Unit != "bag 50kg" || l[0].ConversionValue != 50 {
		t.Fatalf("scanned %+v", l)
	}

	var empty ChildUnitList
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("scan nil failed: %v", err)
	}
	if empty != nil {
		t.Errorf("nil column should scan to nil list")
	}
}

func TestSelectedProduct_MasterQuantity(t *testing.T) {
	withUnit := SelectedProduct{
		TemplateProduct: TemplateProduct{
			ProductID:  2,
			ChildUnits: ChildUnitList{{Unit: "bag50", ConversionValue: 50}},
		},
		Quantity: 2,
	}
	if got := withUnit.MasterQuantity(); got != 100 {
		t.Errorf("MasterQuantity = %v, want 100", got)
	}

	plain := SelectedProduct{
		TemplateProduct: TemplateProduct{ProductID: 1},
		Quantity:        3,
	}
	if got := plain.MasterQuantity(); got != 3 {
		t.Errorf("MasterQuantity = %v, want 3", got)
	}
}
