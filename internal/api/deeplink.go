package api

import (
	"fmt"
	"strings"

	"github.com/iris-tg/iris-cli/internal/validation"
)

// DeepLinkBase is the companion-bot URL every deep link starts from.
const DeepLinkBase = "https://t.me/iris_black_bot"

// BotPermission is one of the rights a bot can request from a user.
type BotPermission string

const (
	PermissionReg      BotPermission = "reg"
	PermissionActivity BotPermission = "activity"
	PermissionSpam     BotPermission = "spam"
	PermissionStars    BotPermission = "stars"
	PermissionPocket   BotPermission = "pocket"
)

// BotPermissions lists every known permission tag.
func BotPermissions() []BotPermission {
	return []BotPermission{PermissionReg, PermissionActivity, PermissionSpam, PermissionStars, PermissionPocket}
}

func (p BotPermission) String() string {
	return string(p)
}

// Give builds a deep link that gifts the given currency to this bot when
// opened. The comment is optional and limited to [A-Za-z0-9_]; no network
// call is made.
func (s LinksService) Give(currency Currency, count int, comment string) (string, error) {
	if err := validation.Count(count); err != nil {
		return "", err
	}
	if err := validation.DeepLinkComment(comment); err != nil {
		return "", err
	}
	tag, err := currency.giveTag()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s?start=%s%d_%d", DeepLinkBase, tag, s.BotID, count)
	if comment != "" {
		sb.WriteByte('_')
		sb.WriteString(comment)
	}
	return sb.String(), nil
}

// RequestRights builds a deep link asking a user to grant the listed
// permissions. Order and multiplicity are preserved verbatim; the caller
// decides what to request and how often.
func (s LinksService) RequestRights(permissions ...BotPermission) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s?start=request_rights_%d", DeepLinkBase, s.BotID)
	for _, p := range permissions {
		sb.WriteByte('_')
		sb.WriteString(string(p))
	}
	return sb.String()
}
