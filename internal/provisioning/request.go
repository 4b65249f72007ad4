package provisioning

// Defaults applied to unset request fields.
const (
	DefaultFilesystem = "xfs"
	DefaultAccessMode = "ReadWriteOnce"
)

// Request describes one volume to provision. It is constructed once from
// operator input and never modified afterwards.
type Request struct {
	Name          string
	SizeMB        int64
	Filesystem    string
	AccessMode    string
	SkipSizeCheck bool
}

// NewRequest builds a Request, applying defaults for unset fields.
func NewRequest(name string, sizeMB int64, filesystem, accessMode string, skipSizeCheck bool) Request {
	if filesystem == "" {
		filesystem = DefaultFilesystem
	}
	if accessMode == "" {
		accessMode = DefaultAccessMode
	}
	return Request{
		Name:          name,
		SizeMB:        sizeMB,
		Filesystem:    filesystem,
		AccessMode:    accessMode,
		SkipSizeCheck: skipSizeCheck,
	}
}
