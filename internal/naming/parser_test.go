package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	legacyName = "/work/cmip5/historical/cmip5.ACCESS1-0.historical.r1i1p1.mo.ocn.Omon.thetao.ver-1.latestX.xml"
	gen5Name   = "/p/css03/CMIP5.CMIP.historical.NCAR.CCSM4.r6i1p1.mon.thetao.ocean.glb-l-gu.v20121031.0000000.0.xml"
	gen6Name   = "/p/user_pub/xclim/CMIP6.CMIP.historical.NCAR.CESM2.r1i1p1f1.mon.thetao.ocean.glb-l-gn.v20190308.0000000.0.xml"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name        string
		path        string
		wantDialect Dialect
		wantID      Identity
		wantVersion string
	}{
		{
			name: "legacy", path: legacyName,
			wantDialect: DialectLegacy,
			wantID:      Identity{"ACCESS1-0", "historical", "r1i1p1", NoGridLabel},
			wantVersion: "1",
		},
		{
			name: "legacy datestamp version", path: "cmip5.CCSM4.rcp85.r10i1p1.mo.ocn.Omon.so.ver-v20121031.latestX.xml",
			wantDialect: DialectLegacy,
			wantID:      Identity{"CCSM4", "rcp85", "r10i1p1", NoGridLabel},
			wantVersion: "v20121031",
		},
		{
			name: "archive gen5", path: gen5Name,
			wantDialect: DialectArchiveGen5,
			wantID:      Identity{"CCSM4", "historical", "r6i1p1", "glb-l-gu"},
			wantVersion: "v20121031",
		},
		{
			name: "archive gen6", path: gen6Name,
			wantDialect: DialectArchiveGen6,
			wantID:      Identity{"CESM2", "historical", "r1i1p1f1", "glb-l-gn"},
			wantVersion: "v20190308",
		},
		{
			name: "archive gen6 latest", path: "CMIP6.CMIP.piControl.IPSL.IPSL-CM6A-LR.r1i1p1f2.mon.so.ocean.glb-p19-gr.latest.0000000.0.xml",
			wantDialect: DialectArchiveGen6,
			wantID:      Identity{"IPSL-CM6A-LR", "piControl", "r1i1p1f2", "glb-p19-gr"},
			wantVersion: "latest",
		},
		{
			name: "archive gen6 integer version", path: "CMIP6.ScenarioMIP.ssp585.MOHC.UKESM1-0-LL.r12i1p1f123.mon.tos.ocean.glb-2d-gn.2.0000000.0.nc",
			wantDialect: DialectArchiveGen6,
			wantID:      Identity{"UKESM1-0-LL", "ssp585", "r12i1p1f123", "glb-2d-gn"},
			wantVersion: "2",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := Parse(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.path, rec.Path)
			assert.Equal(t, tc.wantDialect, rec.Dialect)
			assert.Equal(t, tc.wantID, rec.Identity)
			assert.Equal(t, tc.wantVersion, rec.Version)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		wantKind error
	}{
		{"legacy malformed realization", "cmip5.ACCESS1-0.historical.abc123.mo.ocn.Omon.thetao.ver-1.latestX.xml", ErrInvalidRealization},
		{"legacy realization with forcing index", "cmip5.ACCESS1-0.historical.r1i1p1f1.mo.ocn.Omon.thetao.ver-1.latestX.xml", ErrInvalidRealization},
		{"gen6 realization without forcing index", "CMIP6.CMIP.historical.NCAR.CESM2.r1i1p1.mon.thetao.ocean.glb-l-gn.v20190308.0000000.0.xml", ErrInvalidRealization},
		{"gen6 malformed realization", "CMIP6.CMIP.historical.NCAR.CESM2.abc123.mon.thetao.ocean.glb-l-gn.v20190308.0000000.0.xml", ErrInvalidRealization},
		{"gen5 realization index too wide", "CMIP5.CMIP.historical.NCAR.CCSM4.r100i1p1.mon.thetao.ocean.glb-l-gu.v20121031.0000000.0.xml", ErrInvalidRealization},
		{"unrecognised suite", "obs4MIPs.NASA.AIRS.mon.ta.v20110608.nc", ErrUnknownDialect},
		{"gen6 too few tokens", "CMIP6.CMIP.historical.NCAR.CESM2.r1i1p1f1.xml", ErrUnknownDialect},
		{"legacy version misplaced", "cmip5.ACCESS1-0.historical.r1i1p1.ver-1.xml.a.b.c", ErrUnknownDialect},
		{"empty path", "", ErrUnknownDialect},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantKind)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.path, pe.Path)
		})
	}
}

func TestParse_IgnoresDirectoryDots(t *testing.T) {
	rec, err := Parse("/data/v1.2/ocean.mon/" + "CMIP6.CMIP.historical.NCAR.CESM2.r1i1p1f1.mon.thetao.ocean.glb-l-gn.v20190308.0000000.0.xml")
	require.NoError(t, err)
	assert.Equal(t, "CESM2", rec.Identity.Model)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		basename string
		want     Dialect
		wantErr  bool
	}{
		{"cmip5.ACCESS1-0.historical.r1i1p1.mo.ocn.Omon.thetao.ver-1.latestX.xml", DialectLegacy, false},
		{"cmip3.ncar_ccsm3_0.20c3m.run1.mo.ocn.Omon.so.ver-1.xml", DialectLegacy, false},
		{"CMIP5.CMIP.historical.NCAR.CCSM4.r6i1p1.mon.thetao.ocean.glb-l-gu.v20121031.0000000.0.xml", DialectArchiveGen5, false},
		{"CMIP6.CMIP.historical.NCAR.CESM2.r1i1p1f1.mon.thetao.ocean.glb-l-gn.v20190308.0000000.0.xml", DialectArchiveGen6, false},
		{"CMIP6.xml", DialectArchiveGen6, false},
		{"random.file.nc", DialectUnknown, true},
	}
	for _, tc := range cases {
		t.Run(tc.basename, func(t *testing.T) {
			got, err := Classify(tc.basename)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownDialect)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIdentityString(t *testing.T) {
	assert.Equal(t, "CESM2.historical.r1i1p1f1.glb-l-gn",
		Identity{"CESM2", "historical", "r1i1p1f1", "glb-l-gn"}.String())
	assert.Equal(t, "ACCESS1-0.historical.r1i1p1.-",
		Identity{"ACCESS1-0", "historical", "r1i1p1", NoGridLabel}.String())
}

func TestParseError_Message(t *testing.T) {
	_, err := Parse("/x/cmip5.ACCESS1-0.historical.abc123.mo.ocn.Omon.thetao.ver-1.latestX.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid realization (legacy)")
	assert.Contains(t, err.Error(), `"abc123"`)
}

func TestDialects_ReturnsCopy(t *testing.T) {
	table := Dialects()
	require.Len(t, table, 3)
	assert.Equal(t, DialectArchiveGen6, table[0].Dialect)
	assert.Equal(t, DialectArchiveGen5, table[1].Dialect)
	assert.Equal(t, DialectLegacy, table[2].Dialect)

	table[0] = table[2]
	assert.Equal(t, DialectArchiveGen6, Dialects()[0].Dialect)

	got, err := Classify("CMIP6.CMIP.historical.NCAR.CESM2.r1i1p1f1.mon.thetao.ocean.glb-l-gn.v20190308.0000000.0.xml")
	require.NoError(t, err)
	assert.Equal(t, DialectArchiveGen6, got)
}
