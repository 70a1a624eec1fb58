package model

// InterfaceType is the closed set of storage interfaces the compatibility rules know.
type InterfaceType int

const (
	InterfaceOther InterfaceType = iota
	InterfaceSATA
	InterfaceM2SATA
	InterfaceM2NVMe
)

const (
	interfaceSATAName   = "SATA"
	interfaceM2SATAName = "M.2 SATA"
	interfaceM2NVMeName = "M.2 NVMe"
)

// ParseInterfaceType matches catalog strings exactly; anything else is InterfaceOther.
func ParseInterfaceType(s string) InterfaceType {
	switch s {
	case interfaceSATAName:
		return InterfaceSATA
	case interfaceM2SATAName:
		return InterfaceM2SATA
	case interfaceM2NVMeName:
		return InterfaceM2NVMe
	default:
		return InterfaceOther
	}
}

func (t InterfaceType) String() string {
	switch t {
	case InterfaceSATA:
		return interfaceSATAName
	case InterfaceM2SATA:
		return interfaceM2SATAName
	case InterfaceM2NVMe:
		return interfaceM2NVMeName
	case InterfaceOther:
		return ""
	default:
		return ""
	}
}
