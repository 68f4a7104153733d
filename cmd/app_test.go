package cmd

import (
	"flag"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/belreon/backoffice"
)

func TestStoreFileRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "backoffice.jsonl")
	old := *storeFile
	*storeFile = file
	defer func() { *storeFile = old }()

	// A missing snapshot falls back to the demo dataset.
	s, err := DecodeStoreFile()
	if err != nil {
		t.Fatalf("DecodeStoreFile() failed on missing file: %v", err)
	}
	if !s.Login("Belreon3434", "Nabeel@2002", backoffice.RealmAdmin) {
		t.Fatal("fallback store is not the demo dataset")
	}

	res := s.RegisterClient("roundtrip", "rt@example.com", "secret1")
	if !res.Success {
		t.Fatal(res.Message)
	}
	if err := EncodeStoreFile(s); err != nil {
		t.Fatalf("EncodeStoreFile() failed: %v", err)
	}

	back, err := DecodeStoreFile()
	if err != nil {
		t.Fatalf("DecodeStoreFile() failed: %v", err)
	}
	if _, found := back.ClientByUserID("roundtrip"); !found {
		t.Error("registered client did not survive the snapshot round trip")
	}
}

func TestNavList(t *testing.T) {
	testCases := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"all", []string{"all"}},
		{"/admin/clients, /admin/users", []string{"/admin/clients", "/admin/users"}},
	}
	for _, tc := range testCases {
		if got := navList(tc.input); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("navList(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestKindAndID(t *testing.T) {
	parse := func(args ...string) *flag.FlagSet {
		f := flag.NewFlagSet("test", flag.ContinueOnError)
		if err := f.Parse(args); err != nil {
			t.Fatal(err)
		}
		return f
	}

	kind, id, err := kindAndID(parse("client", "3"))
	if err != nil {
		t.Fatalf("kindAndID() failed: %v", err)
	}
	if kind != backoffice.KindClient || id != 3 {
		t.Errorf("kindAndID() = %s, %d, want client, 3", kind, id)
	}

	if _, _, err := kindAndID(parse("client")); err == nil {
		t.Error("kindAndID() accepted a missing id")
	}
	if _, _, err := kindAndID(parse("gadget", "3")); err == nil {
		t.Error("kindAndID() accepted an unknown kind")
	}
	if _, _, err := kindAndID(parse("client", "three")); err == nil {
		t.Error("kindAndID() accepted a non-numeric id")
	}
}
