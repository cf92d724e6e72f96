package status

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/adapters/out/envlookup"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/domain"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(io.Discard)
}

func collect(vars map[string]string) domain.DeploymentInfo {
	svc := NewService(envlookup.NewSnapshot(vars), testLogger())
	return svc.Collect(context.Background())
}

func TestService_Collect_NothingSet(t *testing.T) {
	info := collect(nil)

	require.Len(t, info, 6)
	for _, e := range info {
		assert.Equal(t, "N/A", e.Value, e.Label)
	}
}

func TestService_Collect_AllSet(t *testing.T) {
	info := collect(map[string]string{
		"INSTANCE_PRIVATE_IP": "10.0.1.23",
		"HOSTNAME":            "ip-10-0-1-23",
		"INSTANCE_ID":         "i-0abc123",
		"INSTANCE_TYPE":       "t3.micro",
		"AZ":                  "us-east-1a",
		"REGION":              "us-east-1",
	})

	assert.Equal(t, domain.DeploymentInfo{
		{Label: "Private IP", Value: "10.0.1.23"},
		{Label: "Hostname", Value: "ip-10-0-1-23"},
		{Label: "Instance ID", Value: "i-0abc123"},
		{Label: "Instance Type", Value: "t3.micro"},
		{Label: "Availability Zone", Value: "us-east-1a"},
		{Label: "Region", Value: "us-east-1"},
	}, info)
}

func TestService_Collect_InstanceIDOnly(t *testing.T) {
	info := collect(map[string]string{"INSTANCE_ID": "i-0abc123"})

	assert.Equal(t, domain.DeploymentInfo{
		{Label: "Private IP", Value: "N/A"},
		{Label: "Hostname", Value: "N/A"},
		{Label: "Instance ID", Value: "i-0abc123"},
		{Label: "Instance Type", Value: "N/A"},
		{Label: "Availability Zone", Value: "N/A"},
		{Label: "Region", Value: "N/A"},
	}, info)
}

func TestService_Collect_EmptyTreatedAsUnset(t *testing.T) {
	info := collect(map[string]string{"REGION": "", "AZ": "us-east-1a"})

	region, _ := info.Value("Region")
	az, _ := info.Value("Availability Zone")
	assert.Equal(t, "N/A", region)
	assert.Equal(t, "us-east-1a", az)
}

// Every subset of the six variables: set ones show their value, unset ones N/A.
func TestService_Collect_AllSubsets(t *testing.T) {
	fields := domain.DeploymentFields

	for mask := 0; mask < 1<<len(fields); mask++ {
		vars := make(map[string]string)
		for i, f := range fields {
			if mask&(1<<i) != 0 {
				vars[f.Variable] = fmt.Sprintf("value-%d", i)
			}
		}

		info := collect(vars)
		require.Len(t, info, len(fields))
		for i, f := range fields {
			assert.Equal(t, f.Label, info[i].Label)
			if mask&(1<<i) != 0 {
				assert.Equal(t, fmt.Sprintf("value-%d", i), info[i].Value, "mask %06b", mask)
			} else {
				assert.Equal(t, "N/A", info[i].Value, "mask %06b", mask)
			}
		}
	}
}

func TestService_Collect_ReadsEachCall(t *testing.T) {
	t.Setenv("REGION", "us-east-1")
	svc := NewService(envlookup.NewProcess(), testLogger())

	first, _ := svc.Collect(context.Background()).Value("Region")
	t.Setenv("REGION", "us-west-2")
	second, _ := svc.Collect(context.Background()).Value("Region")

	assert.Equal(t, "us-east-1", first)
	assert.Equal(t, "us-west-2", second)
}
