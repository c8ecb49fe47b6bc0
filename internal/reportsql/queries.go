package reportsql

// QDonationLeaders sums donations per (assignment, donor type) and ranks
// the groups globally. Inner joins drop assignments without donations.
// Ordering matches report.DonationLeaders exactly: total descending,
// then assignment id, then donor type, both in byte order.
const QDonationLeaders = `
SELECT d.assignment_id,
       a.name,
       a.region,
       dn.donor_type,
       SUM(d.amount_cents) AS total_cents
FROM donations d
INNER JOIN donors dn ON dn.id = d.donor_id
INNER JOIN assignments a ON a.id = d.assignment_id
GROUP BY d.assignment_id, dn.donor_type
ORDER BY total_cents DESC,
         d.assignment_id COLLATE BINARY ASC,
         dn.donor_type COLLATE BINARY ASC
LIMIT ?`

// QRegionalImpactLeaders is the window-function formulation of the
// regional impact report: per-assignment donation counts via GROUP BY,
// then ROW_NUMBER over each region ordered by impact descending with the
// assignment id as tie-breaker. The outer filter keeps rank 1 only.
const QRegionalImpactLeaders = `
SELECT assignment_id, name, region, impact_tenths, donation_count
FROM (
    SELECT a.id            AS assignment_id,
           a.name          AS name,
           a.region        AS region,
           a.impact_tenths AS impact_tenths,
           COUNT(d.id)     AS donation_count,
           ROW_NUMBER() OVER (
               PARTITION BY a.region
               ORDER BY a.impact_tenths DESC, a.id COLLATE BINARY ASC
           ) AS region_rank
    FROM assignments a
    INNER JOIN donations d ON d.assignment_id = a.id
    GROUP BY a.id
)
WHERE region_rank = 1
ORDER BY region COLLATE BINARY ASC`
