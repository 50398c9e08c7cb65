package sqlinline

const QFeedbackTotals = `--sql a4352b64-69ac-463e-89d3-208865ed64f3
select
  count(*) filter (where rating > 0) as positive,
  count(*) filter (where rating < 0) as negative
from feedbacks;
`

const QRecentFeedbacks = `--sql be66a64f-1100-435a-a503-086b04b57987
select f.id, f.workspace_id, f.rating, f.comment, f.created_at
from feedbacks f
order by f.created_at desc
limit $1;
`
