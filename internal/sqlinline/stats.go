package sqlinline

const QPing = `--sql 9c4ab815-4d1b-4d1f-8f53-7ca80d9f69e9
select 1;
`

const QOverview = `--sql bf63bef4-d09f-4990-94da-b34eb6f1f3b7
select
  (select count(*) from chats)                            as total_chats,
  (select count(*) from messages)                         as total_messages,
  (select count(*) from workspaces where not is_base)     as total_models,
  (select count(*) from feedbacks)                        as total_feedbacks;
`

// Counters are scalar subqueries on purpose: joining chats, messages and
// feedbacks in one pass multiplies the counts.
const QWorkspaceMetrics = `--sql 6cf84f90-1eb5-4c03-a6fb-495e8c62f90f
select
  w.id,
  w.name,
  u.email as developer_email,
  (select count(distinct c.user_id) from chats c where c.workspace_id = w.id)   as user_count,
  (select count(*) from chats c where c.workspace_id = w.id)                    as chat_count,
  (select count(*)
     from messages m
     join chats c on c.id = m.chat_id
    where c.workspace_id = w.id)                                                as message_count,
  (select count(*) from feedbacks f where f.workspace_id = w.id and f.rating > 0) as positive,
  (select count(*) from feedbacks f where f.workspace_id = w.id and f.rating < 0) as negative
from workspaces w
join users u on u.id = w.owner_id
where not w.is_base;
`

// The inner join on owned workspaces drops users with zero workspaces from
// the result set entirely; they must not appear in the developer ranking.
const QDeveloperMetrics = `--sql 451ab304-3845-4244-99b1-3fbc390ed97e
select
  u.id,
  u.name,
  u.email,
  count(w.id) as workspace_count,
  coalesce(sum((select count(distinct c.user_id) from chats c where c.workspace_id = w.id)), 0) as total_users,
  coalesce(sum((select count(*) from chats c where c.workspace_id = w.id)), 0)                  as total_chats,
  coalesce(sum((select count(*)
                  from messages m
                  join chats c on c.id = m.chat_id
                 where c.workspace_id = w.id)), 0)                                              as total_messages,
  coalesce(sum((select count(*) from feedbacks f where f.workspace_id = w.id and f.rating > 0)), 0) as total_positive,
  coalesce(sum((select count(*) from feedbacks f where f.workspace_id = w.id and f.rating < 0)), 0) as total_negative
from users u
join workspaces w on w.owner_id = u.id and not w.is_base
group by u.id, u.name, u.email;
`

const QGroupMetrics = `--sql 94d31077-77ba-4361-af63-fc7d39e0c632
select
  g.id,
  g.name,
  (select count(*) from group_members gm where gm.group_id = g.id) as member_count,
  (select count(*)
     from chats c
    where c.user_id in (select gm.user_id from group_members gm where gm.group_id = g.id)) as total_chats,
  (select count(*)
     from messages m
    where m.user_id in (select gm.user_id from group_members gm where gm.group_id = g.id)) as total_messages,
  (select count(*)
     from feedbacks f
    where f.user_id in (select gm.user_id from group_members gm where gm.group_id = g.id)) as total_feedbacks,
  (select count(*)
     from feedbacks f
    where f.rating > 0
      and f.user_id in (select gm.user_id from group_members gm where gm.group_id = g.id)) as total_positive,
  (select count(*)
     from feedbacks f
    where f.rating < 0
      and f.user_id in (select gm.user_id from group_members gm where gm.group_id = g.id)) as total_negative
from groups g
where exists (select 1 from group_members gm where gm.group_id = g.id);
`

// $3 shifts timestamps to the platform day boundary (e.g. '9 hours') before
// bucketing, so a "day" matches what the dashboard calls today.
const QDailyActivity = `--sql 84aa9a7f-8fbb-4f6d-b93d-abb03331c2fb
with chat_days as (
  select (created_at + $3::interval)::date as day,
         count(*)                          as chat_count,
         count(distinct user_id)           as user_count
  from chats
  where (created_at + $3::interval)::date between $1 and $2
  group by 1
),
message_days as (
  select (created_at + $3::interval)::date as day,
         count(*)                          as message_count
  from messages
  where (created_at + $3::interval)::date between $1 and $2
  group by 1
)
select
  coalesce(cd.day, md.day)::text     as day,
  coalesce(cd.chat_count, 0)         as chat_count,
  coalesce(md.message_count, 0)      as message_count,
  coalesce(cd.user_count, 0)         as user_count
from chat_days cd
full outer join message_days md on md.day = cd.day
order by 1;
`
