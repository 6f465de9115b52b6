package scaler

// Clone identity labels. A container carrying LabelIsClone=true and a
// parent label is a clone regardless of its name.
const (
	LabelIsClone    = "com.skillcoder.dockerscaler.is-clone"
	LabelParent     = "com.skillcoder.dockerscaler.parent"
	LabelCloneIndex = "com.skillcoder.dockerscaler.index"
	LabelCreatedBy  = "com.skillcoder.dockerscaler.created-by"

	LabelValueTrue      = "true"
	LabelValueCreatedBy = "dockerscaler-controller"
)

const (
	// cloneNameFormat produces <parent>-clone-<index>; the committed
	// image uses the same name with the cloneImageTag tag.
	cloneNameFormat = "%s-clone-%d"
	cloneImageTag   = "latest"

	// maxSampleFailures is the number of consecutive stats failures
	// after which a container is considered unreachable and dropped
	// from the registry.
	maxSampleFailures = 3

	// staleTickFactor: Ping fails when the last completed tick is
	// older than staleTickFactor times the tick interval.
	staleTickFactor = 2

	maxPercent = 100.0
)
