package tokenclient_test

import (
	"net/http"

	"github.com/stretchr/testify/mock"
)

// MockHTTPDoer is a mock implementation of tokenclient.HTTPDoer.
type MockHTTPDoer struct {
	mock.Mock
}

func (m *MockHTTPDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}
