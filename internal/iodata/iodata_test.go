package iodata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/wuff/pkg/config"
	"github.com/gnames/wuff/pkg/dog"
	"github.com/gnames/wuff/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dogsCSV = `"StichtagDatJahr","DatenstandCd","HundenameText","GebDatHundJahr","SexHundCd","SexHundLang","SexHundSort","AnzHunde"
2015,"D","(Karl) Kaiser Karl vom Edersee",2013,"1","männlich",1,1
2015,"D","?",2009,"2","weiblich",2,1
2015,"D","?",2010,"2","weiblich",2,2
2017,"D","Rexi",2015,"2","weiblich",2,1
2017,"D","Rexli",1998,"1","männlich",1,1
2017,"D","Rey",2006,"1","männlich",1,1
2017,"D","Rey",2016,"1","männlich",1,1
2022,"D","Chloé",2021,"2","weiblich",2,1
2022,"D","Chloë",2016,"2","weiblich",2,1
2022,"D","Choco",2011,"1","männlich",1,1`

func serve(t *testing.T, status int, body string) *httptest.Server {
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
	t.Cleanup(ts.Close)
	return ts
}

func source(url string) *dataset {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptDataURL(url)})
	return New(cfg).(*dataset)
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "expected *gn.Error, got %v", err)
	return gnErr.Code
}

func TestRetrieve(t *testing.T) {
	ts := serve(t, http.StatusOK, dogsCSV)

	c, err := source(ts.URL).Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, c.Len())

	dogs := slices.Collect(c.All())
	assert.Equal(t, dog.Dog{
		Name:       "(Karl) Kaiser Karl vom Edersee",
		Sex:        dog.Male,
		BirthYear:  2013,
		RecordYear: 2015,
		Count:      1,
	}, dogs[0])
	assert.Equal(t, "Chloé", dogs[7].Name)
	assert.Equal(t, dog.Female, dogs[7].Sex)
	assert.Equal(t, 2, dogs[2].Count)

	assert.Len(t, slices.Collect(c.All()), 10)
}

func TestRetrieveBOM(t *testing.T) {
	ts := serve(t, http.StatusOK, "\ufeff"+dogsCSV)

	c, err := source(ts.URL).Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, c.Len())
	for d := range c.All() {
		assert.Greater(t, d.RecordYear, 2000)
	}
}

func TestRetrieveIncorrectCSV(t *testing.T) {
	ts := serve(t, http.StatusOK, "This,Data,Is,Wrong\n1,2,3,4\n5,6,7,8")

	_, err := source(ts.URL).Retrieve(context.Background())
	require.Error(t, err)
	assert.Equal(t, errcode.InvalidFormatError, errCode(t, err))

	gnErr := err.(*gn.Error)
	var inner *gn.Error
	require.True(t, errors.As(gnErr.Err, &inner))
	assert.Equal(t, errcode.MissingFieldError, inner.Code)
	assert.Contains(t, gnErr.Err.Error(), "line 2")
}

func TestRetrieveInvalidValue(t *testing.T) {
	body := "HundenameText,SexHundCd,GebDatHundJahr,StichtagDatJahr,AnzHunde\n" +
		"Rex,1,2010,2020,1\n" +
		"Bello,9,2010,2020,1\n"
	ts := serve(t, http.StatusOK, body)

	_, err := source(ts.URL).Retrieve(context.Background())
	require.Error(t, err)
	assert.Equal(t, errcode.InvalidFormatError, errCode(t, err))
	assert.Contains(t, err.(*gn.Error).Err.Error(), "line 3")
}

func TestRetrieveNotCSV(t *testing.T) {
	tests := []struct {
		msg  string
		body string
	}{
		{"header only", "This is not dog data!"},
		{"empty body", ""},
		{"bom only", "\ufeff"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			ts := serve(t, http.StatusOK, tt.body)
			_, err := source(ts.URL).Retrieve(context.Background())
			require.Error(t, err)
			assert.Equal(t, errcode.EmptyDatasetError, errCode(t, err))
		})
	}
}

func TestRetrieveNetworkFailure(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ts := serve(t, http.StatusNotFound, "nothing here")
		_, err := source(ts.URL).Retrieve(context.Background())
		require.Error(t, err)
		assert.Equal(t, errcode.NetworkFailureError, errCode(t, err))
		assert.Contains(t, err.(*gn.Error).Err.Error(), "404")
	})

	t.Run("server is gone", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		_, err := source(url).Retrieve(context.Background())
		require.Error(t, err)
		assert.Equal(t, errcode.NetworkFailureError, errCode(t, err))
	})

	t.Run("canceled context", func(t *testing.T) {
		ts := serve(t, http.StatusOK, dogsCSV)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := source(ts.URL).Retrieve(ctx)
		require.Error(t, err)
		assert.Equal(t, errcode.NetworkFailureError, errCode(t, err))
	})
}

func TestReadRows(t *testing.T) {
	t.Run("short rows keep only present columns", func(t *testing.T) {
		rows, err := readRows(strings.NewReader("a,b,c\n1,2\n4,5,6,7\n"))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, map[string]string{"a": "1", "b": "2"}, rows[0])
		assert.Equal(t, map[string]string{"a": "4", "b": "5", "c": "6"}, rows[1])
	})

	t.Run("byte order mark is removed", func(t *testing.T) {
		rows, err := readRows(strings.NewReader("\ufeffa,b\n1,2\n"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "1", rows[0]["a"])
	})

	t.Run("empty input", func(t *testing.T) {
		rows, err := readRows(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
