// Package constants provides named constants used throughout the rlsim codebase.
// This centralizes magic numbers for better maintainability and documentation.
package constants

// Simulation defaults used by the CLI and config layer.
const (
	// DefaultTrials is the number of trials simulated per severity group.
	DefaultTrials = 400

	// DefaultSeed is the base random seed used when none is configured.
	// A fixed value keeps generated figures reproducible across runs.
	DefaultSeed int64 = 7

	// DefaultEpsilon is the exploration probability used when a caller
	// does not pick one.
	DefaultEpsilon = 0.1
)

// Reward schedule defaults for the two-choice bandit.
const (
	// DefaultStableMean is the mean reward of the stable-role schedule.
	DefaultStableMean = 0.7

	// DefaultStableNoise is the standard deviation of the stable-role schedule
	// when built through the default bandit.
	DefaultStableNoise = 0.05

	// DefaultScheduleNoise is the standard deviation of a stable schedule
	// built without an explicit noise level.
	DefaultScheduleNoise = 0.1

	// DefaultSwitchEvery is how many steps a volatile schedule stays in one state.
	DefaultSwitchEvery = 10
)

// Chart output defaults.
const (
	// DefaultOutputPath is where the severity chart is written.
	DefaultOutputPath = "docs/severity_mean_rewards.png"

	// DefaultChartWidth and DefaultChartHeight are the chart size in pixels.
	DefaultChartWidth  = 900
	DefaultChartHeight = 600

	// ChartHeadroom is added above the tallest bar when scaling the y axis.
	ChartHeadroom = 0.1

	// ChartTitle is the title rendered above the severity bar chart.
	ChartTitle = "Mean Reward by Severity Group"

	// ChartYLabel labels the y axis of the severity bar chart.
	ChartYLabel = "Mean Reward"
)
