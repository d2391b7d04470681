package tests

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/swamyrayudu/localhunt-backend/internal/directions"
	"github.com/swamyrayudu/localhunt-backend/internal/mapview"
)

func (s *APITestSuite) seedLocation(id string, lat, lng float64, shopName string) {
	_, err := s.dbClient.Exec(
		context.Background(),
		`INSERT INTO product_locations (id, latitude, longitude, shop_name, product_name, price)
         VALUES ($1, $2, $3, $4, 'Fresh Mangoes', 120)`,
		id, lat, lng, shopName,
	)
	s.Require().NoError(err)
}

func (s *APITestSuite) doSessionRequest(method, path, token, body string) *http.Response {
	var reqBody *bytes.Buffer
	if body != "" {
		reqBody = bytes.NewBufferString(body)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", s.baseUrl, path), reqBody)
	s.Require().NoError(err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)

	return resp
}

func (s *APITestSuite) TestMapSessionLifecycle() {
	s.seedLocation("loc-1", 16.5062, 80.648, "Besant Road Organics")

	// session derives its stores from the catalog when none are sent
	resp := s.doSessionRequest(http.MethodPost, "/map/sessions", "", "{}")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	info, err := decodeResponseBody[directions.SessionInfo](resp)
	s.Require().NoError(err)
	s.NotEmpty(info.ID)
	s.NotEmpty(info.Token)
	s.Nil(info.State.SelectedStore)

	sessionPath := "/map/sessions/" + info.ID

	resp = s.doSessionRequest(http.MethodGet, sessionPath, info.Token, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	state, err := decodeResponseBody[directions.SessionState](resp)
	s.Require().NoError(err)
	s.False(state.ShowDirections)

	resp = s.doSessionRequest(http.MethodPost, sessionPath+"/select/loc-1", info.Token, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	state, err = decodeResponseBody[directions.SessionState](resp)
	s.Require().NoError(err)
	s.Require().NotNil(state.SelectedStore)
	s.Equal("loc-1", state.SelectedStore.ID)
	s.True(state.ShowDirections)

	resp = s.doSessionRequest(http.MethodGet, sessionPath+"/view", info.Token, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	view, err := decodeResponseBody[mapview.View](resp)
	s.Require().NoError(err)
	s.Len(view.Markers, 1)
	s.Equal("loc-1", view.Markers[0].ID)

	resp = s.doSessionRequest(http.MethodPost, sessionPath+"/directions/clear", info.Token, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	state, err = decodeResponseBody[directions.SessionState](resp)
	s.Require().NoError(err)
	s.Nil(state.SelectedStore)
	s.False(state.ShowDirections)

	resp = s.doSessionRequest(http.MethodDelete, sessionPath, info.Token, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.doSessionRequest(http.MethodGet, sessionPath, info.Token, "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *APITestSuite) TestSessionTokenGuard() {
	resp := s.doSessionRequest(http.MethodPost, "/map/sessions", "", "{}")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	info, err := decodeResponseBody[directions.SessionInfo](resp)
	s.Require().NoError(err)

	sessionPath := "/map/sessions/" + info.ID

	resp = s.doSessionRequest(http.MethodGet, sessionPath, "", "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = s.doSessionRequest(http.MethodGet, sessionPath, "not.a.valid.token", "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// a token for one session must not open another
	other := s.doSessionRequest(http.MethodPost, "/map/sessions", "", "{}")
	s.Require().Equal(http.StatusOK, other.StatusCode)

	otherInfo, err := decodeResponseBody[directions.SessionInfo](other)
	s.Require().NoError(err)

	resp = s.doSessionRequest(http.MethodGet, sessionPath, otherInfo.Token, "")
	s.Equal(http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func (s *APITestSuite) TestInlineStoresSession() {
	body := `{
		"stores": [
			{"id": "inline-1", "latitude": 16.51, "longitude": 80.65, "shopName": "Inline Shop", "price": "45.00"},
			{"id": "inline-2", "shopName": "No Coordinates"}
		],
		"initialSelectedId": "inline-1"
	}`

	resp := s.doSessionRequest(http.MethodPost, "/map/sessions", "", body)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	info, err := decodeResponseBody[directions.SessionInfo](resp)
	s.Require().NoError(err)

	sessionPath := "/map/sessions/" + info.ID

	resp = s.doSessionRequest(http.MethodGet, sessionPath, info.Token, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	state, err := decodeResponseBody[directions.SessionState](resp)
	s.Require().NoError(err)
	s.Require().NotNil(state.SelectedStore)
	s.Equal("inline-1", state.SelectedStore.ID)
	s.True(state.ShowDirections)
	s.True(state.ScrollIntoView)

	// the scroll effect is consumed by the first read
	resp = s.doSessionRequest(http.MethodGet, sessionPath, info.Token, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	state, err = decodeResponseBody[directions.SessionState](resp)
	s.Require().NoError(err)
	s.False(state.ScrollIntoView)

	// only the store with coordinates is selectable
	resp = s.doSessionRequest(http.MethodPost, sessionPath+"/select/inline-2", info.Token, "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
