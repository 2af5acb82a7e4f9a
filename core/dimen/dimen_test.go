package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.core")
	defer teardown()
	//
	d, err := ParseDimen("12pt")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*PT {
		t.Errorf("(1) expected d to be 12pt (%d), is %d", 12*PT, d)
	}
	//
	d, err = ParseDimen("2.5cm")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != Dimen(2.5*float64(CM)) {
		t.Errorf("(2) expected d to be 2.5cm, is %d", d)
	}
	//
	_, err = ParseDimen("0.4\\linewidth")
	if err == nil {
		t.Errorf("(3) expected macro-relative length to be rejected")
	}
	//
	_, err = ParseDimen("3em")
	if err == nil {
		t.Errorf("(4) expected font-relative unit to be rejected")
	}
}
