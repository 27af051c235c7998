package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aumai/kisanmitra/internal/advisory"
	"github.com/aumai/kisanmitra/internal/market"
	"github.com/aumai/kisanmitra/internal/models"
	"github.com/aumai/kisanmitra/internal/pests"
	"github.com/aumai/kisanmitra/internal/testutil"
)

func newTestServer(t *testing.T, authEnabled bool, token string) *httptest.Server {
	t.Helper()
	store := market.NewMemoryStore()
	testutil.Seed(t, store, testutil.SampleRecords())
	r := NewRouter(store, pests.NewCatalog(), advisory.NewRouter(nil), nil, authEnabled, token, nil)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestListPrices(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Get(srv.URL + "/prices?commodity=RICE")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decode[PriceListResponse](t, resp)
	if body.Total != 3 {
		t.Fatalf("total = %d, want 3", body.Total)
	}
	// Sorted by date descending: the 2026-02-27 Azadpur record first.
	if body.Prices[0].Market != "Azadpur" || body.Prices[0].Date != "2026-02-27" {
		t.Errorf("first record = %+v, want newest", body.Prices[0])
	}
}

func TestListPrices_StateFilter(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Get(srv.URL + "/prices?commodity=rice&state=bihar")
	if err != nil {
		t.Fatal(err)
	}
	body := decode[PriceListResponse](t, resp)
	if body.Total != 1 || body.Prices[0].Market != "Patna" {
		t.Errorf("state filter: %+v", body.Prices)
	}
}

func TestListPrices_MissingCommodity(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Get(srv.URL + "/prices")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestListPrices_NoMatch(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Get(srv.URL + "/prices?commodity=saffron")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decode[PriceListResponse](t, resp)
	if body.Total != 0 {
		t.Errorf("total = %d, want 0", body.Total)
	}
}

func TestPriceTrend(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Get(srv.URL + "/prices/trend?commodity=rice&market=Azadpur")
	if err != nil {
		t.Fatal(err)
	}
	body := decode[PriceListResponse](t, resp)
	if body.Total != 1 || body.Prices[0].Date != "2026-02-27" {
		t.Errorf("trend: %+v", body.Prices)
	}
}

func TestPriceTrend_MissingParams(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Get(srv.URL + "/prices/trend?commodity=rice")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAddPrice(t *testing.T) {
	srv := newTestServer(t, false, "")

	payload := `{"commodity":"onion","market":"Lasalgaon","state":"Maharashtra",` +
		`"min_price":900,"max_price":1400,"modal_price":1200,"date":"2026-02-27"}`
	resp, err := http.Post(srv.URL+"/prices", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/prices?commodity=onion")
	if err != nil {
		t.Fatal(err)
	}
	body := decode[PriceListResponse](t, resp)
	if body.Total != 1 || body.Prices[0].ModalPrice != 1200 {
		t.Errorf("added record not queryable: %+v", body.Prices)
	}
}

func TestAddPrice_InvalidRecord(t *testing.T) {
	srv := newTestServer(t, false, "")

	cases := map[string]string{
		"negative price": `{"commodity":"onion","market":"Lasalgaon","state":"Maharashtra","min_price":-1,"max_price":1400,"modal_price":1200,"date":"2026-02-27"}`,
		"bad date":       `{"commodity":"onion","market":"Lasalgaon","state":"Maharashtra","min_price":900,"max_price":1400,"modal_price":1200,"date":"27/02/2026"}`,
		"missing fields": `{"commodity":"onion"}`,
		"not json":       `{{{`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/prices", "application/json", strings.NewReader(payload))
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestListPests(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Get(srv.URL + "/pests")
	if err != nil {
		t.Fatal(err)
	}
	body := decode[PestListResponse](t, resp)
	if body.Total < 30 {
		t.Errorf("total = %d, want full catalogue", body.Total)
	}
}

func TestListPests_CropFilter(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Get(srv.URL + "/pests?crop=rice")
	if err != nil {
		t.Fatal(err)
	}
	body := decode[PestListResponse](t, resp)
	if body.Total == 0 {
		t.Fatal("no pests for rice")
	}
	for _, p := range body.Pests {
		found := false
		for _, c := range p.AffectedCrops {
			if strings.EqualFold(c, "rice") {
				found = true
			}
		}
		if !found {
			t.Errorf("%s does not affect rice", p.Name)
		}
	}
}

func TestIdentifyPests(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Get(srv.URL + "/pests/identify?symptoms=hopperburn")
	if err != nil {
		t.Fatal(err)
	}
	body := decode[PestListResponse](t, resp)
	if body.Total == 0 || body.Pests[0].Name != "Brown Plant Hopper" {
		t.Errorf("identify: %+v", body.Pests)
	}
}

func TestIdentifyPests_MissingSymptoms(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Get(srv.URL + "/pests/identify")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAsk(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Post(srv.URL+"/ask", "application/json",
		strings.NewReader(`{"query":"what is the mandi rate for onion","location":"Nashik"}`))
	if err != nil {
		t.Fatal(err)
	}
	body := decode[models.Response](t, resp)
	if !strings.Contains(body.Answer, "Agmarknet") {
		t.Errorf("answer = %q", body.Answer)
	}
	if !strings.Contains(body.Answer, "Nashik") {
		t.Errorf("location missing: %q", body.Answer)
	}
	if body.Language != "en" {
		t.Errorf("language = %q, want default en", body.Language)
	}
	if body.Disclaimer != models.Disclaimer {
		t.Errorf("disclaimer = %q", body.Disclaimer)
	}
}

func TestAsk_FallbackNeverErrors(t *testing.T) {
	srv := newTestServer(t, false, "")

	resp, err := http.Post(srv.URL+"/ask", "application/json",
		strings.NewReader(`{"query":"zzz unmatched"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decode[models.Response](t, resp)
	if body.Answer == "" || len(body.Sources) == 0 {
		t.Errorf("fallback incomplete: %+v", body)
	}
}

func TestAuthMiddleware(t *testing.T) {
	srv := newTestServer(t, true, "secret-token")

	// No token.
	resp, err := http.Get(srv.URL + "/prices?commodity=rice")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", resp.StatusCode)
	}

	// Wrong token.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/prices?commodity=rice", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong token: status = %d, want 401", resp.StatusCode)
	}

	// Correct token.
	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/prices?commodity=rice", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", resp.StatusCode)
	}
}
