package domain

// Sentinel is displayed in place of any tracked variable that is unset or empty.
const Sentinel = "N/A"

// Field binds a display label to the environment variable that backs it.
type Field struct {
	Label    string
	Variable string
}

// DeploymentFields lists the tracked variables in display order.
// The order is part of the rendered page and must not change.
var DeploymentFields = []Field{
	{Label: "Private IP", Variable: "INSTANCE_PRIVATE_IP"},
	{Label: "Hostname", Variable: "HOSTNAME"},
	{Label: "Instance ID", Variable: "INSTANCE_ID"},
	{Label: "Instance Type", Variable: "INSTANCE_TYPE"},
	{Label: "Availability Zone", Variable: "AZ"},
	{Label: "Region", Variable: "REGION"},
}

// Entry is a single label/value pair shown on the status page.
type Entry struct {
	Label string
	Value string
}

// DeploymentInfo is the ordered set of entries built for one request.
type DeploymentInfo []Entry

// Value returns the value shown for label, or false if the label is not tracked.
func (d DeploymentInfo) Value(label string) (string, bool) {
	for _, e := range d {
		if e.Label == label {
			return e.Value, true
		}
	}
	return "", false
}

// ValueOrSentinel returns v, or Sentinel when v is empty.
func ValueOrSentinel(v string) string {
	if v == "" {
		return Sentinel
	}
	return v
}
