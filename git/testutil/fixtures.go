package testutil

// Test user information used across all test helpers.
const (
	// TestAuthor is the default author name for test commits.
	TestAuthor = "Test User"

	// TestEmail is the default email for test commits.
	TestEmail = "test@example.com"
)

// Test tag and branch names used by NewChartRepo.
const (
	// TestBranchMain is the default branch of fixture repositories.
	TestBranchMain = "master"

	// TestBranchDevelop carries one extra chart on top of master.
	TestBranchDevelop = "develop"

	// TestTagLightweight is a lightweight tag on the initial commit.
	TestTagLightweight = "v1.0.0"

	// TestTagAnnotated is an annotated tag on the initial commit.
	TestTagAnnotated = "v1.1.0"

	// TestTagMessage is the message of TestTagAnnotated.
	TestTagMessage = "Release version 1.1.0"
)

// Test file content.
const (
	// TestFileContent is sample content for README files.
	TestFileContent = "# Test Repository\n\nThis is a test repository.\n"

	// TestAppChart is the Chart.yaml of charts/app.
	TestAppChart = `apiVersion: v2
name: app
description: A test application chart
type: application
version: 0.1.0
appVersion: "1.0.0"
`

	// TestLibChart is the Chart.yaml of charts/lib.
	TestLibChart = `apiVersion: v2
name: lib
description: A test library chart
type: library
version: 0.2.0
`

	// TestExtraChart is the Chart.yaml added on the develop branch.
	TestExtraChart = `apiVersion: v2
name: extra
description: A chart only present on develop
version: 0.3.0
`

	// TestValuesContent is sample chart values.
	TestValuesContent = `replicaCount: 1
image:
  repository: nginx
  tag: stable
`

	// TestLicenseContent is a committed file without an extension.
	TestLicenseContent = "MIT\n"

	// TestIndexContent is a committed index.yaml returned as a single file.
	TestIndexContent = `apiVersion: v1
entries: {}
generated: "2024-01-01T00:00:00Z"
`
)

// ChartFiles is the tree committed on master by NewChartRepo.
var ChartFiles = map[string]string{
	"README.md":              TestFileContent,
	"charts/index.yaml":      TestIndexContent,
	"charts/LICENSE":         TestLicenseContent,
	"charts/app/Chart.yaml":  TestAppChart,
	"charts/app/values.yaml": TestValuesContent,
	"charts/lib/Chart.yaml":  TestLibChart,
	"docs/guide.md":          "# Guide\n",
}
