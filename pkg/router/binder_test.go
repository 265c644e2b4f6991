package router

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

type bindTarget struct {
	UserID string `json:"user_id"`
	Limit  int    `json:"limit"`
	Offset int64  `json:"offset"`
	Active bool   `json:"active"`
	Plain  string
	hidden string
}

func Test_bindQuery(t *testing.T) {
	values := url.Values{}
	values.Set("user_id", "user1")
	values.Set("limit", "20")
	values.Set("offset", "40")
	values.Set("active", "true")
	values.Set("Plain", "untagged")

	var target bindTarget
	require.NoError(t, bindQuery(values, &target))
	require.Equal(t, "user1", target.UserID)
	require.Equal(t, 20, target.Limit)
	require.EqualValues(t, 40, target.Offset)
	require.True(t, target.Active)
	require.Equal(t, "untagged", target.Plain)
	require.Empty(t, target.hidden)
}

func Test_bindQuery_MissingParams(t *testing.T) {
	var target bindTarget
	require.NoError(t, bindQuery(url.Values{}, &target))
	require.Empty(t, target.UserID)
	require.Zero(t, target.Limit)
}

func Test_bindQuery_InvalidNumber(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "twenty")

	var target bindTarget
	require.Error(t, bindQuery(values, &target))
}
