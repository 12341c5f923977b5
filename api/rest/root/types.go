package root

const (
	ServiceName = "python-api"
	Greeting    = "Hello from Python!"
)

// ServiceInfo describes the instance answering the request
type ServiceInfo struct {
	Service       string `json:"service"`
	Message       string `json:"message"`
	Host          string `json:"host"`
	VaultInjected bool   `json:"vault_injected"`
}

// resolves the machine hostname
type HostnameResolver interface {
	Hostname() (string, error)
}

// reports whether the Vault secret has been rendered; an error means the
// check itself failed and the secret is reported as not injected
type SecretProbe interface {
	Injected() (bool, error)
}
