package types

type SubSystem uint8

const (
	Claims SubSystem = iota
	Oracles
	Budget
	Rewards
	Genesis
	Testing = 255
)

func (s SubSystem) String() string {
	switch s {
	case Claims:
		return "Claims"
	case Oracles:
		return "Oracles"
	case Budget:
		return "Budget"
	case Rewards:
		return "Rewards"
	case Genesis:
		return "Genesis"
	case Testing:
		return "Testing"
	default:
		return "Unknown"
	}
}

type AllocationsLogger interface {
	LogInfo(msg string, subSystem SubSystem, keyvals ...interface{})
	LogError(msg string, subSystem SubSystem, keyvals ...interface{})
	LogWarn(msg string, subSystem SubSystem, keyvals ...interface{})
	LogDebug(msg string, subSystem SubSystem, keyvals ...interface{})
}
