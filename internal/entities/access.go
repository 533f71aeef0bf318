package entities

type AccessLevel int

const (
	AccessUnauthenticated AccessLevel = iota
	AccessWhitelisted
	AccessTokenAuthenticated
)

func (l AccessLevel) String() string {
	switch l {
	case AccessWhitelisted:
		return "whitelisted"
	case AccessTokenAuthenticated:
		return "token_authenticated"
	default:
		return "unauthenticated"
	}
}

type AccessDecision struct {
	Level    AccessLevel
	Username string
	ClientIP string
}

func (d AccessDecision) CanWake() bool {
	return d.Level == AccessWhitelisted || d.Level == AccessTokenAuthenticated
}

func (d AccessDecision) CanManage() bool {
	return d.Level == AccessTokenAuthenticated
}
