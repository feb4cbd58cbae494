// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
bps 执行器: bonk/paper/scissors 押注游戏, commit-reveal.

游戏的生命周期:
  FirstPlayerMove   先手创建游戏, 押注进入 first 托管账户, 只提交 commitment   -> Created
  SecondPlayerMove  后手押注相同金额进入 second 托管账户, 提交 commitment      -> Started
  CancelGame        无人加入时先手取消, 全额退回                              -> Cancelled
  Reveal            玩家揭示 salt+choice, 两人都揭示后结算                    -> Resolved
  AdminCloseStaleGame 开始后超过揭示期限, 管理员按弃权规则结算                -> Resolved

结算: 胜者得到两份押注的90%, 10%销毁; 平局各自退回; 都没有揭示时两人各承担一半销毁.

游戏地址由 ("game", 先手地址, gameId) 派生, 托管地址由 (角色, 游戏地址) 派生,
都不保存在游戏记录中.

本地索引:
  LODB-bps-state:<state>:<index>         -> GameRecord
  LODB-bps-addr:<state>:<addr>:<index>   -> GameRecord
  index = height*types.MaxTxsPerBlock + txIndex, 状态变化时删除旧索引
*/
